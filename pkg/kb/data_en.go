package kb

func englishEntries() []Entry {
	return []Entry{
		{
			ID:       "ice-at-door",
			Question: "What should I do if ICE comes to my door?",
			Keywords: []string{"ice", "door", "knock", "home", "agents", "immigration"},
			Answer: "Do not open the door. ICE cannot enter your home without a judicial warrant " +
				"signed by a judge. Ask them to slide any warrant under the door and check for a " +
				"judge's signature. An administrative form (I-200) is not enough.",
			VoiceScript: "Don't open the door. Ask them to slide the warrant under the door. " +
				"Look for a judge's signature. If there isn't one, you do not have to open. " +
				"Say: I do not consent to your entry.",
			AudioFile:        "ice-at-door.mp3",
			RelatedScenarios: []string{"scenario-ice-home"},
			RelatedCards:     []string{"imm-002", "imm-001"},
			Category:         "immigration",
		},
		{
			ID:       "remain-silent",
			Question: "Do I have to answer questions about my immigration status?",
			Keywords: []string{"silent", "status", "questions", "answer", "citizenship"},
			Answer: "No. Under the Fifth Amendment you have the right to remain silent. You are " +
				"not required to say where you were born, whether you are a citizen, or how you " +
				"entered the country. This applies at home, on the street, at work, or at a checkpoint.",
			VoiceScript: "No, you don't. You have the right to remain silent. " +
				"Say: I am exercising my right to remain silent. That's all you need.",
			AudioFile:        "remain-silent.mp3",
			RelatedScenarios: []string{"scenario-street-stop"},
			RelatedCards:     []string{"imm-001"},
			Category:         "immigration",
		},
		{
			ID:       "police-street-stop",
			Question: "What are my rights if the police stop me on the street?",
			Keywords: []string{"police", "stop", "street", "stopped", "officer"},
			Answer: "You can ask: am I free to go? If yes, walk away calmly. You do not have to " +
				"answer questions or consent to a search. If they pat you down for weapons, say " +
				"clearly that you do not consent but do not physically resist.",
			VoiceScript: "Ask: am I free to go? If they say yes, walk away calmly. " +
				"You don't have to answer questions. Say: I do not consent to a search.",
			AudioFile:        "police-street-stop.mp3",
			RelatedScenarios: []string{"scenario-street-stop"},
			RelatedCards:     []string{"crim-001"},
			Category:         "police",
		},
		{
			ID:       "workplace-raid",
			Question: "What should I do if there is a raid at my workplace?",
			Keywords: []string{"raid", "work", "workplace", "job", "factory"},
			Answer: "Stay calm and do not run — running can be used against you. You have the " +
				"right to remain silent and to ask for a lawyer. Do not sign any documents " +
				"before speaking with an attorney.",
			VoiceScript: "Stay calm. Don't run. You have the right to remain silent " +
				"and to ask for a lawyer. Don't sign anything before talking to one.",
			AudioFile:        "workplace-raid.mp3",
			RelatedScenarios: []string{"scenario-workplace-raid"},
			RelatedCards:     []string{"lab-001", "imm-001"},
			Category:         "labor",
		},
		{
			ID:       "right-to-lawyer",
			Question: "Can I ask for a lawyer if I am detained?",
			Keywords: []string{"lawyer", "attorney", "detained", "detention", "legal help"},
			Answer: "Yes. You have the right to speak with a lawyer before answering questions, " +
				"even if you are undocumented. Say clearly: I want to speak with my lawyer. " +
				"Memorize your lawyer's phone number — you may not have access to your phone.",
			VoiceScript: "Yes. Say: I want to speak with my lawyer. You have this right " +
				"even if you are undocumented. Memorize your lawyer's number.",
			AudioFile:        "right-to-lawyer.mp3",
			RelatedScenarios: []string{"scenario-detention"},
			RelatedCards:     []string{"imm-003"},
			Category:         "immigration",
		},
		{
			ID:       "judicial-warrant",
			Question: "How do I know if a warrant is signed by a judge?",
			Keywords: []string{"warrant", "judge", "signed", "judicial", "order"},
			Answer: "A judicial warrant says \"U.S. District Court\" or a state court at the top " +
				"and is signed by a judge. An ICE administrative warrant (Form I-200 or I-205) is " +
				"signed by an immigration officer and does not allow entry into your home.",
			VoiceScript: "Look at the top: a real warrant names a court and is signed by " +
				"a judge. Forms I-200 or I-205 are not court warrants. They don't allow entry.",
			AudioFile:        "judicial-warrant.mp3",
			RelatedScenarios: []string{"scenario-ice-home"},
			RelatedCards:     []string{"imm-002"},
			Category:         "immigration",
		},
		{
			ID:       "traffic-stop",
			Question: "What are my rights during a traffic stop?",
			Keywords: []string{"car", "traffic", "driving", "pulled over", "vehicle"},
			Answer: "Pull over calmly, keep your hands visible, and show your license and " +
				"registration if you are driving. You do not have to answer questions about " +
				"your immigration status, and you can refuse consent to a search of your car.",
			VoiceScript: "Keep your hands visible. Show license and registration. " +
				"You don't have to answer status questions. Say: I do not consent to a search.",
			AudioFile:        "traffic-stop.mp3",
			RelatedScenarios: []string{"scenario-traffic-stop"},
			RelatedCards:     []string{"crim-002"},
			Category:         "police",
		},
		{
			ID:       "family-plan",
			Question: "How can I prepare my family for an emergency?",
			Keywords: []string{"family", "plan", "emergency", "prepare", "children", "kids"},
			Answer: "Make a family plan: memorize key phone numbers, designate a caregiver for " +
				"your children, and keep important documents in a safe place a trusted person can " +
				"reach. Carry a know-your-rights card with you.",
			VoiceScript: "Make a plan now. Memorize key numbers. Choose a caregiver for your " +
				"kids. Keep documents where a trusted person can reach them.",
			AudioFile:        "family-plan.mp3",
			RelatedScenarios: []string{"scenario-family-plan"},
			RelatedCards:     []string{"imm-004"},
			Category:         "preparation",
		},
		{
			ID:       "signing-documents",
			Question: "Should I sign documents I don't understand?",
			Keywords: []string{"sign", "documents", "papers", "signature", "form"},
			Answer: "No. Never sign anything you do not understand — you could be giving up " +
				"your right to see a judge. Ask for a lawyer first. You have the right to say: " +
				"I will not sign anything without speaking to an attorney.",
			VoiceScript: "No. Don't sign anything you don't understand. " +
				"Say: I will not sign without speaking to my lawyer.",
			AudioFile:        "signing-documents.mp3",
			RelatedScenarios: []string{"scenario-detention"},
			RelatedCards:     []string{"imm-003"},
			Category:         "immigration",
		},
		{
			ID:       "recording-agents",
			Question: "Can I record immigration agents or police?",
			Keywords: []string{"record", "video", "film", "camera", "phone"},
			Answer: "Yes, in public spaces you have the right to record agents and police as " +
				"long as you do not interfere with their actions. Announce that you are " +
				"recording. Do not hide your phone or reach for it suddenly during a stop.",
			VoiceScript: "Yes, in public you can record, as long as you don't interfere. " +
				"Announce it. Move slowly with your phone.",
			AudioFile:        "recording-agents.mp3",
			RelatedScenarios: []string{"scenario-street-stop"},
			RelatedCards:     []string{"crim-003"},
			Category:         "police",
		},
	}
}
