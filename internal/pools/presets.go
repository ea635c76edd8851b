package pools

// Built-in presets for the global variable engine. Pool contents are
// classroom-facing and stay in Spanish.

const (
	PresetGeneral = "general"
	PresetTech    = "tech"
	PresetSocial  = "social"
)

// PresetNames returns the built-in preset names in display order.
func PresetNames() []string {
	return []string{PresetGeneral, PresetTech, PresetSocial}
}

// Preset returns the named built-in preset. The second return is false for
// unknown names.
func Preset(name string) (Pools, bool) {
	switch name {
	case PresetGeneral:
		return General(), true
	case PresetTech:
		return Tech(), true
	case PresetSocial:
		return Social(), true
	}
	return Pools{}, false
}

// General is the default preset loaded on first start.
func General() Pools {
	return Pools{
		Sectores:    []string{"Tecnología", "Negocios", "Comunicación", "Educación", "Social", "Medio Ambiente", "Diseño", "Cultura"},
		Productos:   []string{"App Inteligente", "Plataforma SaaS", "Campaña Transmedia", "Sistema IoT", "Laboratorio Ciudadano", "Startup Circular"},
		Estilos:     []string{"Minimalista", "Brutalista", "Experimental", "Corporativo", "Orgánico", "Accesible y Universal"},
		Publicos:    []string{"Jóvenes creativos", "Adultos mayores", "Pymes", "Estudiantes universitarios", "Comunidades rurales", "Población con discapacidad"},
		Valores:     []string{"Innovación", "Sostenibilidad", "Inclusión", "Eficiencia", "Transparencia", "Descentralización"},
		Territorios: []string{"Medellín", "Latinoamérica", "Contexto Rural", "Barrios Periféricos", "Global / Escalable"},
	}
}

func Tech() Pools {
	return Pools{
		Sectores:    []string{"Ciberseguridad", "Inteligencia Artificial", "Web3", "Fintech", "Healthtech", "GovTech"},
		Productos:   []string{"API Pública", "Algoritmo Predictivo", "Contrato Inteligente", "Dashboard Analítico", "Infraestructura Serverless"},
		Estilos:     []string{"Cyberpunk", "Dark Mode Minimal", "Futurista", "Tecnológico / Neón", "Monocromático"},
		Publicos:    []string{"Desarrolladores", "Early Adopters", "Empresas B2B", "Inversores VC"},
		Valores:     []string{"Disrupción", "Escalabilidad", "Privacidad de Datos", "Automatización", "Código Abierto"},
		Territorios: []string{"Ecosistema Startup", "Sillicon Valley Latam", "Nómadas Digitales", "Mercados Emergentes"},
	}
}

func Social() Pools {
	return Pools{
		Sectores:    []string{"Derechos Humanos", "Salud Mental", "Inclusión Financiera", "Desarrollo Rural", "Acción Climática", "Construcción de Paz"},
		Productos:   []string{"Red Comunitaria", "Programa de Mentoría", "Plataforma de Donaciones", "Cooperativa Digital", "Campaña de Concientización"},
		Estilos:     []string{"Cálido / Empático", "Ilustración Orgánica", "Alegre y Vibrante", "Documental / Realista"},
		Publicos:    []string{"Grupos vulnerables", "Voluntarios", "ONGs", "Activistas", "Madres cabeza de familia", "Líderes sociales"},
		Valores:     []string{"Empatía", "Equidad", "Impacto Medible", "Solidaridad", "Justicia Social"},
		Territorios: []string{"Zonas de conflicto", "Periferias Urbanas", "Territorios Indígenas", "Asentamientos Informales"},
	}
}
