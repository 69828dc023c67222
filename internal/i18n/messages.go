package i18n

var catalogs = map[Language]*Messages{
	LangEN: {
		ValidationFailed: "Validation failed",
		SuccessMessage:   "Thank you for your message! We have received your inquiry and will get back to you within 24-48 hours.",
		CaptchaRequired:  "Security verification is required. Please complete the captcha to submit.",
		CaptchaInvalid:   "Security verification failed. Please try again.",
		SpamDetected:     "Your message appears to be spam. Please contact us directly.",
		RateLimited:      "Please wait at least 1 minute between submissions (%d seconds remaining)",
		DeliveryFailed:   "Unable to send your message at this time. Please try again later or contact us directly at %s",

		Required:          "%s is required",
		EmailInvalid:      "Please enter a valid email address",
		EmailTooLong:      "Email address is too long",
		EmailInvalidChars: "Email contains invalid characters",
		EmailMultipleAt:   "Email must contain exactly one @ symbol",
		EmailDisposable:   "Please use a permanent email address",
		PhoneInvalid:      "Please enter a valid phone number (10-20 digits)",
		PhoneRepeated:     "Phone number appears to be invalid (too many repeated digits)",
		LengthMin:         "%s must be at least %d characters",
		LengthMax:         "%s must be less than %d characters",
		ConsentRequired:   "Please accept the privacy policy and terms of service",

		FieldNames: map[string]string{
			"firstName": "First Name",
			"lastName":  "Last Name",
			"email":     "Email",
			"phone":     "Phone",
			"subject":   "Subject",
			"message":   "Message",
		},

		EmailSubjectAdmin:    "New Contact Form Submission - %s",
		EmailSubjectClient:   "Thank you for contacting %s",
		NewContactSubmission: "New Contact Form Submission",
		ReceivedMessage:      "You have received a new message through the website contact form.",
		Submitted:            "Submitted",
		AutoGenerated:        "This email was automatically generated by the contact form system.",
		ThankYouTitle:        "Thank You for Contacting Us!",
		ThankYouMessage:      "We have received your message and appreciate your interest in our POS & CRM solutions.",
		ResponseTime:         "Our team will review your inquiry and respond within 24-48 hours.",
		WhatHappensNext:      "What happens next?",
		Steps: [3]string{
			"Our team reviews your message",
			"We prepare a personalized response",
			"You receive our detailed reply",
		},
		ContactInfo: "In the meantime, feel free to explore our website or contact us directly:",
		BestRegards: "Best regards,<br>The %s Team",

		Sending:        "Sending...",
		CountdownWait:  "Please wait %d seconds before submitting again",
		TokenRequired:  "Please complete the security verification to submit your message.",
		MessageTooLong: "Message is too long (maximum 2000 characters)",
	},
	LangFR: {
		ValidationFailed: "Échec de la validation",
		SuccessMessage:   "Merci pour votre message ! Nous avons reçu votre demande et vous répondrons dans les 24-48 heures.",
		CaptchaRequired:  "La vérification de sécurité est requise. Veuillez compléter le captcha pour soumettre.",
		CaptchaInvalid:   "Échec de la vérification de sécurité. Veuillez réessayer.",
		SpamDetected:     "Votre message semble être du spam. Contactez-nous directement.",
		RateLimited:      "Veuillez attendre au moins 1 minute entre les soumissions (%d secondes restantes)",
		DeliveryFailed:   "Impossible d'envoyer votre message pour le moment. Veuillez réessayer plus tard ou nous contacter directement à %s",

		Required:          "%s est requis",
		EmailInvalid:      "Veuillez saisir une adresse email valide",
		EmailTooLong:      "L'adresse email est trop longue",
		EmailInvalidChars: "L'email contient des caractères non valides",
		EmailMultipleAt:   "L'email doit contenir exactement un symbole @",
		EmailDisposable:   "Veuillez utiliser une adresse email permanente",
		PhoneInvalid:      "Veuillez saisir un numéro de téléphone valide (10-20 chiffres)",
		PhoneRepeated:     "Le numéro de téléphone semble invalide (trop de chiffres répétés)",
		LengthMin:         "%s doit contenir au moins %d caractères",
		LengthMax:         "%s doit contenir moins de %d caractères",
		ConsentRequired:   "Veuillez accepter la politique de confidentialité et les conditions de service",

		FieldNames: map[string]string{
			"firstName": "Prénom",
			"lastName":  "Nom",
			"email":     "Email",
			"phone":     "Téléphone",
			"subject":   "Sujet",
			"message":   "Message",
		},

		EmailSubjectAdmin:    "Nouvelle soumission de formulaire de contact - %s",
		EmailSubjectClient:   "Merci de nous avoir contactés - %s",
		NewContactSubmission: "Nouvelle soumission de formulaire de contact",
		ReceivedMessage:      "Vous avez reçu un nouveau message via le formulaire de contact du site.",
		Submitted:            "Soumis",
		AutoGenerated:        "Cet email a été généré automatiquement par le système de formulaire de contact.",
		ThankYouTitle:        "Merci de nous avoir contactés !",
		ThankYouMessage:      "Nous avons reçu votre message et apprécions votre intérêt pour nos solutions de caisse et CRM.",
		ResponseTime:         "Notre équipe examinera votre demande et vous répondra dans les 24-48 heures.",
		WhatHappensNext:      "Que se passe-t-il maintenant ?",
		Steps: [3]string{
			"Notre équipe examine votre message",
			"Nous préparons une réponse personnalisée",
			"Vous recevez notre réponse détaillée",
		},
		ContactInfo: "En attendant, n'hésitez pas à explorer notre site web ou nous contacter directement :",
		BestRegards: "Meilleures salutations,<br>L'équipe %s",

		Sending:        "Envoi en cours...",
		CountdownWait:  "Veuillez attendre %d secondes avant de soumettre à nouveau",
		TokenRequired:  "Veuillez compléter la vérification de sécurité pour envoyer votre message.",
		MessageTooLong: "Le message est trop long (maximum 2000 caractères)",
	},
	LangNL: {
		ValidationFailed: "Validatie mislukt",
		SuccessMessage:   "Bedankt voor uw bericht! We hebben uw aanvraag ontvangen en zullen binnen 24-48 uur reageren.",
		CaptchaRequired:  "Beveiligingsverificatie is vereist. Voltooi de captcha om te verzenden.",
		CaptchaInvalid:   "Veiligheidsverificatie mislukt. Probeer het opnieuw.",
		SpamDetected:     "Uw bericht lijkt spam te zijn. Neem direct contact met ons op.",
		RateLimited:      "Wacht minstens 1 minuut tussen inzendingen (%d seconden resterend)",
		DeliveryFailed:   "Kan uw bericht momenteel niet verzenden. Probeer het later opnieuw of neem rechtstreeks contact op via %s",

		Required:          "%s is vereist",
		EmailInvalid:      "Voer een geldig e-mailadres in",
		EmailTooLong:      "E-mailadres is te lang",
		EmailInvalidChars: "E-mail bevat ongeldige tekens",
		EmailMultipleAt:   "E-mail moet precies één @ symbool bevatten",
		EmailDisposable:   "Gebruik een permanent e-mailadres",
		PhoneInvalid:      "Voer een geldig telefoonnummer in (10-20 cijfers)",
		PhoneRepeated:     "Telefoonnummer lijkt ongeldig (te veel herhaalde cijfers)",
		LengthMin:         "%s moet minimaal %d tekens bevatten",
		LengthMax:         "%s moet minder dan %d tekens bevatten",
		ConsentRequired:   "Accepteer het privacybeleid en de servicevoorwaarden",

		FieldNames: map[string]string{
			"firstName": "Voornaam",
			"lastName":  "Achternaam",
			"email":     "E-mail",
			"phone":     "Telefoon",
			"subject":   "Onderwerp",
			"message":   "Bericht",
		},

		EmailSubjectAdmin:    "Nieuwe contactformulier inzending - %s",
		EmailSubjectClient:   "Bedankt voor het contact - %s",
		NewContactSubmission: "Nieuwe contactformulier inzending",
		ReceivedMessage:      "U heeft een nieuw bericht ontvangen via het contactformulier van de website.",
		Submitted:            "Ingediend",
		AutoGenerated:        "Deze e-mail is automatisch gegenereerd door het contactformulier systeem.",
		ThankYouTitle:        "Bedankt voor het contact!",
		ThankYouMessage:      "We hebben uw bericht ontvangen en waarderen uw interesse in onze kassasysteem en CRM oplossingen.",
		ResponseTime:         "Ons team zal uw aanvraag bekijken en binnen 24-48 uur reageren.",
		WhatHappensNext:      "Wat gebeurt er nu?",
		Steps: [3]string{
			"Ons team bekijkt uw bericht",
			"We bereiden een gepersonaliseerd antwoord voor",
			"U ontvangt ons gedetailleerde antwoord",
		},
		ContactInfo: "In de tussentijd kunt u gerust onze website verkennen of direct contact opnemen:",
		BestRegards: "Met vriendelijke groeten,<br>Het %s Team",

		Sending:        "Verzenden...",
		CountdownWait:  "Wacht %d seconden voordat u opnieuw verzendt",
		TokenRequired:  "Voltooi de beveiligingsverificatie om uw bericht te verzenden.",
		MessageTooLong: "Bericht is te lang (maximaal 2000 tekens)",
	},
}
