package kb

func spanishEntries() []Entry {
	return []Entry{
		{
			ID:       "ice-en-la-puerta",
			Question: "¿Qué hago si ICE toca mi puerta?",
			Keywords: []string{"ice", "puerta", "casa", "migra", "tocan", "agentes"},
			Answer: "No abras la puerta. ICE no puede entrar a tu casa sin una orden judicial " +
				"firmada por un juez. Pide que pasen la orden por debajo de la puerta y busca " +
				"la firma de un juez. Una orden administrativa (formulario I-200) no es suficiente.",
			VoiceScript: "No abras la puerta. Pide que pasen la orden por debajo. " +
				"Busca la firma de un juez. Si no la tiene, no tienes que abrir. " +
				"Di: no doy mi consentimiento para que entren.",
			AudioFile:        "ice-en-la-puerta.mp3",
			RelatedScenarios: []string{"scenario-ice-home"},
			RelatedCards:     []string{"imm-002", "imm-001"},
			Category:         "immigration",
		},
		{
			ID:       "guardar-silencio",
			Question: "¿Tengo que contestar preguntas sobre mi estatus migratorio?",
			Keywords: []string{"silencio", "estatus", "preguntas", "contestar", "ciudadania"},
			Answer: "No. Tienes el derecho de guardar silencio bajo la Quinta Enmienda. No estás " +
				"obligado a decir dónde naciste, si eres ciudadano, ni cómo entraste al país. " +
				"Esto aplica en tu casa, en la calle, en el trabajo o en un retén.",
			VoiceScript: "No. Tienes derecho a guardar silencio. " +
				"Di: estoy ejerciendo mi derecho a guardar silencio. Eso es todo.",
			AudioFile:        "guardar-silencio.mp3",
			RelatedScenarios: []string{"scenario-street-stop"},
			RelatedCards:     []string{"imm-001"},
			Category:         "immigration",
		},
		{
			ID:       "policia-en-la-calle",
			Question: "¿Cuáles son mis derechos si la policía me detiene en la calle?",
			Keywords: []string{"policia", "policía", "calle", "detiene", "parada"},
			Answer: "Puedes preguntar: ¿soy libre de irme? Si dicen que sí, retírate con calma. " +
				"No tienes que contestar preguntas ni dar consentimiento a un registro. Si te " +
				"revisan por armas, di claramente que no das tu consentimiento, pero no resistas físicamente.",
			VoiceScript: "Pregunta: ¿soy libre de irme? Si dicen que sí, vete con calma. " +
				"No tienes que contestar. Di: no doy mi consentimiento a un registro.",
			AudioFile:        "policia-en-la-calle.mp3",
			RelatedScenarios: []string{"scenario-street-stop"},
			RelatedCards:     []string{"crim-001"},
			Category:         "police",
		},
		{
			ID:       "redada-en-el-trabajo",
			Question: "¿Qué hago si hay una redada en mi trabajo?",
			Keywords: []string{"redada", "trabajo", "empleo", "fabrica", "fábrica"},
			Answer: "Mantén la calma y no corras — correr puede usarse en tu contra. Tienes " +
				"derecho a guardar silencio y a pedir un abogado. No firmes ningún documento " +
				"antes de hablar con un abogado.",
			VoiceScript: "Mantén la calma. No corras. Tienes derecho a guardar silencio " +
				"y a pedir un abogado. No firmes nada antes de hablar con uno.",
			AudioFile:        "redada-en-el-trabajo.mp3",
			RelatedScenarios: []string{"scenario-workplace-raid"},
			RelatedCards:     []string{"lab-001", "imm-001"},
			Category:         "labor",
		},
		{
			ID:       "derecho-a-abogado",
			Question: "¿Puedo pedir un abogado si me detienen?",
			Keywords: []string{"abogado", "detienen", "detención", "detencion", "ayuda legal"},
			Answer: "Sí. Tienes derecho a hablar con un abogado antes de contestar preguntas, " +
				"aunque no tengas documentos. Di claramente: quiero hablar con mi abogado. " +
				"Memoriza el número de tu abogado — puede que no tengas acceso a tu teléfono.",
			VoiceScript: "Sí. Di: quiero hablar con mi abogado. Tienes este derecho " +
				"aunque no tengas documentos. Memoriza su número.",
			AudioFile:        "derecho-a-abogado.mp3",
			RelatedScenarios: []string{"scenario-detention"},
			RelatedCards:     []string{"imm-003"},
			Category:         "immigration",
		},
		{
			ID:       "orden-judicial",
			Question: "¿Cómo sé si una orden está firmada por un juez?",
			Keywords: []string{"orden", "juez", "firmada", "judicial", "corte"},
			Answer: "Una orden judicial dice \"U.S. District Court\" o el nombre de una corte " +
				"estatal arriba y lleva la firma de un juez. Una orden administrativa de ICE " +
				"(formulario I-200 o I-205) la firma un oficial de inmigración y no permite entrar a tu casa.",
			VoiceScript: "Mira la parte de arriba: una orden real nombra una corte y lleva " +
				"la firma de un juez. Los formularios I-200 o I-205 no son órdenes de corte. " +
				"No permiten entrar.",
			AudioFile:        "orden-judicial.mp3",
			RelatedScenarios: []string{"scenario-ice-home"},
			RelatedCards:     []string{"imm-002"},
			Category:         "immigration",
		},
		{
			ID:       "parada-de-trafico",
			Question: "¿Cuáles son mis derechos en una parada de tráfico?",
			Keywords: []string{"carro", "trafico", "tráfico", "manejando", "auto"},
			Answer: "Detente con calma, mantén las manos visibles y muestra tu licencia y " +
				"registro si vas manejando. No tienes que contestar preguntas sobre tu estatus " +
				"migratorio y puedes negar el consentimiento a un registro de tu carro.",
			VoiceScript: "Manos visibles. Muestra licencia y registro. No tienes que " +
				"contestar sobre tu estatus. Di: no doy mi consentimiento a un registro.",
			AudioFile:        "parada-de-trafico.mp3",
			RelatedScenarios: []string{"scenario-traffic-stop"},
			RelatedCards:     []string{"crim-002"},
			Category:         "police",
		},
		{
			ID:       "plan-familiar",
			Question: "¿Cómo puedo preparar a mi familia para una emergencia?",
			Keywords: []string{"familia", "plan", "emergencia", "preparar", "hijos", "niños"},
			Answer: "Haz un plan familiar: memoriza números de teléfono importantes, designa a " +
				"una persona para cuidar a tus hijos y guarda tus documentos importantes donde " +
				"una persona de confianza pueda alcanzarlos. Lleva contigo una tarjeta de derechos.",
			VoiceScript: "Haz un plan ahora. Memoriza números clave. Elige quién cuidará a " +
				"tus hijos. Guarda tus documentos donde alguien de confianza los encuentre.",
			AudioFile:        "plan-familiar.mp3",
			RelatedScenarios: []string{"scenario-family-plan"},
			RelatedCards:     []string{"imm-004"},
			Category:         "preparation",
		},
		{
			ID:       "firmar-documentos",
			Question: "¿Debo firmar documentos que no entiendo?",
			Keywords: []string{"firmar", "documentos", "papeles", "firma", "formulario"},
			Answer: "No. Nunca firmes algo que no entiendes — podrías renunciar a tu derecho de " +
				"ver a un juez. Pide un abogado primero. Tienes derecho a decir: no voy a firmar " +
				"nada sin hablar con un abogado.",
			VoiceScript: "No. No firmes nada que no entiendas. " +
				"Di: no voy a firmar sin hablar con mi abogado.",
			AudioFile:        "firmar-documentos.mp3",
			RelatedScenarios: []string{"scenario-detention"},
			RelatedCards:     []string{"imm-003"},
			Category:         "immigration",
		},
		{
			ID:       "grabar-agentes",
			Question: "¿Puedo grabar a los agentes de inmigración o a la policía?",
			Keywords: []string{"grabar", "video", "filmar", "camara", "cámara", "telefono"},
			Answer: "Sí, en espacios públicos tienes derecho a grabar a agentes y policías " +
				"mientras no interfieras con sus acciones. Anuncia que estás grabando. No " +
				"escondas tu teléfono ni lo saques de forma brusca durante una parada.",
			VoiceScript: "Sí, en público puedes grabar mientras no interfieras. " +
				"Anúncialo. Mueve tu teléfono despacio.",
			AudioFile:        "grabar-agentes.mp3",
			RelatedScenarios: []string{"scenario-street-stop"},
			RelatedCards:     []string{"crim-003"},
			Category:         "police",
		},
	}
}
