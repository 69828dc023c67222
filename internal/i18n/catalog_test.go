package i18n

import "testing"

func TestDetect(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		referer  string
		want     Language
	}{
		{"explicit english", "en", "", LangEN},
		{"explicit french", "fr", "https://fastcaisse.be/contact-en.html", LangFR},
		{"explicit dutch", "nl", "", LangNL},
		{"unsupported explicit falls to referer", "de", "https://fastcaisse.be/contact-en.html", LangEN},
		{"english referer suffix", "", "https://fastcaisse.be/contact-en.html", LangEN},
		{"dutch referer suffix", "", "https://fastcaisse.be/contact-nl.html", LangNL},
		{"base page defaults to french", "", "https://fastcaisse.be/contact.html", LangFR},
		{"no hints at all", "", "", LangFR},
		{"garbage everywhere", "xx", "not-a-url", LangFR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Detect(tt.explicit, tt.referer); got != tt.want {
				t.Errorf("Detect(%q, %q) = %q, want %q", tt.explicit, tt.referer, got, tt.want)
			}
		})
	}
}

func TestSupported(t *testing.T) {
	for _, code := range []string{"en", "fr", "nl"} {
		if !Supported(code) {
			t.Errorf("Supported(%q) = false, want true", code)
		}
	}
	for _, code := range []string{"", "de", "EN", "french"} {
		if Supported(code) {
			t.Errorf("Supported(%q) = true, want false", code)
		}
	}
}

func TestCatalogIsTotal(t *testing.T) {
	// Unsupported languages must fall back to the default catalog, never nil.
	if got := Catalog(Language("de")); got != catalogs[DefaultLanguage] {
		t.Errorf("Catalog(de) did not fall back to the default language")
	}
	for _, lang := range []Language{LangEN, LangFR, LangNL} {
		m := Catalog(lang)
		if m == nil {
			t.Fatalf("Catalog(%q) = nil", lang)
		}
		if m.SuccessMessage == "" || m.ValidationFailed == "" || m.RateLimited == "" {
			t.Errorf("Catalog(%q) has empty core messages", lang)
		}
		if len(m.FieldNames) == 0 {
			t.Errorf("Catalog(%q) has no field names", lang)
		}
	}
}

func TestFieldName(t *testing.T) {
	tests := []struct {
		lang  Language
		field string
		want  string
	}{
		{LangEN, "firstName", "First Name"},
		{LangFR, "firstName", "Prénom"},
		{LangNL, "lastName", "Achternaam"},
		{LangEN, "unknownField", "UnknownField"},
	}

	for _, tt := range tests {
		if got := FieldName(tt.lang, tt.field); got != tt.want {
			t.Errorf("FieldName(%q, %q) = %q, want %q", tt.lang, tt.field, got, tt.want)
		}
	}
}
