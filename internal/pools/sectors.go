package pools

// SectorID identifies one of the structured option sets used by the manual
// generator. The set is closed: lookups go through Sector rather than raw
// string indexing.
type SectorID string

const (
	SectorTecnologia   SectorID = "tecnologia"
	SectorSocial       SectorID = "social"
	SectorComunicacion SectorID = "comunicacion"
)

// SectorOptions is the fixed-shape option record for one manual-mode sector.
type SectorOptions struct {
	Label       string
	Productos   []string
	Publicos    []string
	Problemas   []string
	Tonos       []string
	Formatos    []string
	Valores     []string
	Territorios []string
}

// SectorIDs returns the valid sector identifiers in display order.
func SectorIDs() []SectorID {
	return []SectorID{SectorTecnologia, SectorSocial, SectorComunicacion}
}

// Sector returns the option set for a sector id. The second return is false
// for ids outside the closed set.
func Sector(id SectorID) (SectorOptions, bool) {
	opts, ok := sectorOptions[id]
	return opts, ok
}

var sectorOptions = map[SectorID]SectorOptions{
	SectorTecnologia: {
		Label:       "Tecnología",
		Productos:   []string{"app híbrida de alfabetización digital", "plataforma de automatización", "sistema IoT comunitario", "dashboard de visualización de datos"},
		Publicos:    []string{"jóvenes creativos", "pymes locales", "adultos mayores", "personas con discapacidad visual"},
		Problemas:   []string{"brecha tecnológica", "procesos ineficientes", "desconexión de datos", "baja accesibilidad digital"},
		Tonos:       []string{"minimalista", "futurista", "tecnológico", "accesible y claro"},
		Formatos:    []string{"Prototipo Interactivo", "Arquitectura de Software", "App Móvil", "SaaS"},
		Valores:     []string{"innovación", "escalabilidad", "accesibilidad universal", "seguridad"},
		Territorios: []string{"Medellín", "Latinoamérica", "Entorno Global", "Zonas Rurales Conectadas"},
	},
	SectorSocial: {
		Label:       "Impacto Social",
		Productos:   []string{"laboratorio ciudadano", "red colaborativa local", "plataforma de mapeo territorial", "programa de intervención híbrido"},
		Publicos:    []string{"comunidades vulnerables", "líderes comunitarios", "voluntarios", "ONGs territoriales"},
		Problemas:   []string{"desigualdad de oportunidades", "aislamiento social", "falta de recursos", "desplazamiento"},
		Tonos:       []string{"cálido", "empático", "inclusivo", "documental", "esperanzador"},
		Formatos:    []string{"Metodología de Intervención", "Campaña de Concientización", "App Comunitaria", "Reporte de Impacto"},
		Valores:     []string{"equidad", "solidaridad", "justicia social", "apoyo mutuo"},
		Territorios: []string{"Barrios Periféricos", "Territorios Rurales", "Zonas de Paz", "Contexto Latinoamericano"},
	},
	SectorComunicacion: {
		Label:       "Comunicación & Diseño",
		Productos:   []string{"campaña transmedia", "experiencia interactiva visual", "documental inmersivo", "sistema de identidad visual"},
		Publicos:    []string{"generación Z", "consumidores conscientes", "creadores de contenido", "audiencias globales"},
		Problemas:   []string{"desinformación", "saturación visual", "falta de pertenencia identitaria", "invisibilización cultural"},
		Tonos:       []string{"vibrante", "provocativo", "vanguardista", "narrativo profundo"},
		Formatos:    []string{"Campaña Transmedia", "Experiencia Web/VR", "Manual de Marca", "Pitch Deck Visual"},
		Valores:     []string{"autenticidad", "conexión emocional", "estética", "expresión cultural"},
		Territorios: []string{"Entornos Urbanos", "Ecosistemas Digitales", "Diáspora Global", "Escena Cultural Local"},
	},
}
