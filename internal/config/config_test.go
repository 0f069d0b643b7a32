package config

import "testing"

func TestValidate_Defaults(t *testing.T) {
	cfg := &Config{CatalogURL: DefaultCatalogURL}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.UserAgent != DefaultUserAgent {
		t.Errorf("UserAgent = %q, want %q", cfg.UserAgent, DefaultUserAgent)
	}
	if cfg.Language != DefaultLanguage {
		t.Errorf("Language = %q, want %q", cfg.Language, DefaultLanguage)
	}
}

func TestValidate_EmptyCatalogURL(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Fatal("Expected an error for an empty catalog_url")
	}
}

func TestValidate_InvalidLanguage(t *testing.T) {
	cfg := &Config{CatalogURL: DefaultCatalogURL, Language: "not-a-language"}
	if err := cfg.Validate(); err == nil {
		t.Fatal("Expected an error for an invalid language")
	}
}

func TestValidateLanguage(t *testing.T) {
	tests := []struct {
		code    string
		wantErr bool
	}{
		{"en", false},
		{"es", false},
		{"fr", false},
		{"", true},
		{"12", true},
		{"english", true},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := ValidateLanguage(tt.code)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateLanguage(%q) error = %v, wantErr %v", tt.code, err, tt.wantErr)
			}
		})
	}
}

func TestGetLogger_Initialized(t *testing.T) {
	if GetConfig() == nil {
		t.Fatal("Expected the configuration to be loaded at init")
	}
	if GetUserAgent() == "" {
		t.Error("Expected a non-empty user agent")
	}
}
