package knit

import "testing"

func TestExtractProvidedType(t *testing.T) {
	tests := []struct {
		name      string
		signature string
		want      string
		wantOK    bool
	}{
		{
			name:      "qualified initializer",
			signature: "knit.demo.AuditLogger.<init> -> knit.demo.AuditLogger",
			want:      "knit.demo.AuditLogger",
			wantOK:    true,
		},
		{
			name:      "no surrounding spaces",
			signature: "Store.<init>->Store",
			want:      "Store",
			wantOK:    true,
		},
		{
			name:      "last arrow wins",
			signature: "Factory.make -> builder -> knit.demo.Widget",
			want:      "knit.demo.Widget",
			wantOK:    true,
		},
		{
			name:      "missing delimiter",
			signature: "knit.demo.AuditLogger.<init>",
			wantOK:    false,
		},
		{
			name:      "empty signature",
			signature: "",
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractProvidedType(tt.signature)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractInjectionType(t *testing.T) {
	tests := []struct {
		name       string
		methodID   string
		wantType   string
		wantStatus string
		wantOK     bool
	}{
		{
			name:       "with status",
			methodID:   "knit.demo.Shell.run -> knit.demo.CommandRegistry (GLOBAL)",
			wantType:   "knit.demo.CommandRegistry",
			wantStatus: "GLOBAL",
			wantOK:     true,
		},
		{
			name:     "without status",
			methodID: "knit.demo.Shell.run -> knit.demo.CommandRegistry",
			wantType: "knit.demo.CommandRegistry",
			wantOK:   true,
		},
		{
			name:     "missing delimiter",
			methodID: "knit.demo.Shell.run",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ, status, ok := ExtractInjectionType(tt.methodID)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if typ != tt.wantType {
				t.Errorf("type = %q, want %q", typ, tt.wantType)
			}
			if status != tt.wantStatus {
				t.Errorf("status = %q, want %q", status, tt.wantStatus)
			}
		})
	}
}

func TestIsSelfProvider(t *testing.T) {
	tests := []struct {
		name      string
		classID   string
		signature string
		want      bool
	}{
		{
			name:      "slash identifier with dotted signature",
			classID:   "knit/demo/AuditLogger",
			signature: "knit.demo.AuditLogger.<init> -> knit.demo.AuditLogger",
			want:      true,
		},
		{
			name:      "simple name on both sides",
			classID:   "AuditLogger",
			signature: "AuditLogger.<init> -> AuditLogger",
			want:      true,
		},
		{
			name:      "provides a different type",
			classID:   "knit/demo/StoreFactory",
			signature: "knit.demo.StoreFactory.<init> -> knit.demo.Store",
			want:      false,
		},
		{
			name:      "not an initializer",
			classID:   "knit/demo/Store",
			signature: "knit.demo.Store.open -> knit.demo.Store",
			want:      false,
		},
		{
			name:      "unrelated class",
			classID:   "knit/demo/EventBus",
			signature: "knit.demo.AuditLogger.<init> -> knit.demo.AuditLogger",
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSelfProvider(tt.classID, tt.signature); got != tt.want {
				t.Errorf("IsSelfProvider(%q, %q) = %v, want %v",
					tt.classID, tt.signature, got, tt.want)
			}
		})
	}
}
