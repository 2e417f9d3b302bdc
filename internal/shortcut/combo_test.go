package shortcut

import (
	"errors"
	"testing"
)

func TestParseSuccess(t *testing.T) {
	tests := []struct {
		name     string
		spec     string
		wantMods Modifier
		wantKey  Key
		wantNorm string
	}{
		{name: "single modifier", spec: "Alt+G", wantMods: ModAlt, wantKey: KeyG, wantNorm: "Alt+G"},
		{name: "two modifiers", spec: "Ctrl+Shift+T", wantMods: ModCtrl | ModShift, wantKey: KeyT, wantNorm: "Ctrl+Shift+T"},
		{name: "bare key", spec: "F5", wantMods: 0, wantKey: KeyF5, wantNorm: "F5"},
		{name: "digit", spec: "Alt+3", wantMods: ModAlt, wantKey: Key3, wantNorm: "Alt+3"},
		{name: "Control alias", spec: "Control+A", wantMods: ModCtrl, wantKey: KeyA, wantNorm: "Ctrl+A"},
		{name: "Option alias", spec: "Option+Space", wantMods: ModAlt, wantKey: KeySpace, wantNorm: "Alt+Space"},
		{name: "Command alias", spec: "Command+K", wantMods: ModMeta, wantKey: KeyK, wantNorm: "Cmd+K"},
		{name: "Meta alias", spec: "Meta+K", wantMods: ModMeta, wantKey: KeyK, wantNorm: "Cmd+K"},
		{name: "Super alias", spec: "Super+K", wantMods: ModMeta, wantKey: KeyK, wantNorm: "Cmd+K"},
		{name: "Return alias", spec: "Ctrl+Return", wantMods: ModCtrl, wantKey: KeyEnter, wantNorm: "Ctrl+Enter"},
		{name: "Esc alias", spec: "Shift+Esc", wantMods: ModShift, wantKey: KeyEscape, wantNorm: "Shift+Escape"},
		{name: "Del alias", spec: "Ctrl+Alt+Del", wantMods: ModCtrl | ModAlt, wantKey: KeyDelete, wantNorm: "Ctrl+Alt+Delete"},
		{name: "Backspace", spec: "Cmd+Backspace", wantMods: ModMeta, wantKey: KeyBackspace, wantNorm: "Cmd+Backspace"},
		{name: "Tab", spec: "Alt+Tab", wantMods: ModAlt, wantKey: KeyTab, wantNorm: "Alt+Tab"},
		{name: "F12", spec: "Ctrl+Shift+F12", wantMods: ModCtrl | ModShift, wantKey: KeyF12, wantNorm: "Ctrl+Shift+F12"},
		{name: "whitespace trimmed", spec: " Ctrl + Shift + T ", wantMods: ModCtrl | ModShift, wantKey: KeyT, wantNorm: "Ctrl+Shift+T"},
		{name: "modifier order normalized", spec: "Cmd+Shift+Alt+Ctrl+X", wantMods: ModCtrl | ModAlt | ModShift | ModMeta, wantKey: KeyX, wantNorm: "Ctrl+Alt+Shift+Cmd+X"},
		{name: "duplicate modifier", spec: "Ctrl+Control+A", wantMods: ModCtrl, wantKey: KeyA, wantNorm: "Ctrl+A"},
		{name: "unknown token ignored", spec: "Hyper+Ctrl+A", wantMods: ModCtrl, wantKey: KeyA, wantNorm: "Ctrl+A"},
		{name: "last key wins", spec: "Ctrl+A+B", wantMods: ModCtrl, wantKey: KeyB, wantNorm: "Ctrl+B"},
		{name: "key before modifier", spec: "G+Alt", wantMods: ModAlt, wantKey: KeyG, wantNorm: "Alt+G"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.spec)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.spec, err)
			}
			if c.Mods != tt.wantMods {
				t.Errorf("Mods = %v, want %v", c.Mods, tt.wantMods)
			}
			if c.Key != tt.wantKey {
				t.Errorf("Key = %v, want %v", c.Key, tt.wantKey)
			}
			if got := c.String(); got != tt.wantNorm {
				t.Errorf("String() = %q, want %q", got, tt.wantNorm)
			}
		})
	}
}

func TestParseFailure(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{name: "empty", spec: ""},
		{name: "modifiers only", spec: "Ctrl+Shift"},
		{name: "lowercase letter", spec: "Ctrl+a"},
		{name: "lowercase named key", spec: "Alt+space"},
		{name: "unknown key", spec: "Ctrl+PageUp"},
		{name: "trailing plus", spec: "Ctrl+"},
		{name: "F13 unsupported", spec: "F13"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse(tt.spec)
			if err == nil {
				t.Fatalf("Parse(%q) = %v, want error", tt.spec, c)
			}
			if !errors.Is(err, ErrInvalidCombination) {
				t.Errorf("error = %v, want ErrInvalidCombination", err)
			}
		})
	}
}

func TestCanonicalRoundTrip(t *testing.T) {
	mods := []Modifier{0, ModCtrl, ModAlt | ModShift, ModCtrl | ModAlt | ModShift | ModMeta, ModMeta}
	for _, m := range mods {
		for _, k := range AllKeys() {
			c := Combination{Mods: m, Key: k}
			parsed, err := Parse(c.String())
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", c.String(), err)
			}
			if parsed != c {
				t.Fatalf("Parse(%q) = %+v, want %+v", c.String(), parsed, c)
			}
			if again := parsed.String(); again != c.String() {
				t.Fatalf("canonical form unstable: %q -> %q", c.String(), again)
			}
		}
	}
}

func TestCombinationEquality(t *testing.T) {
	a, err := Parse("Shift+Ctrl+T")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse("Control+Shift+T")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Errorf("%+v != %+v", a, b)
	}
}

func TestAllKeysHaveNames(t *testing.T) {
	keys := AllKeys()
	if len(keys) != 54 {
		t.Errorf("len(AllKeys()) = %d, want 54", len(keys))
	}
	for _, k := range keys {
		if k.String() == "" {
			t.Errorf("key %d has no name", k)
		}
	}
	if KeyNone.String() != "" {
		t.Errorf("KeyNone.String() = %q, want empty", KeyNone.String())
	}
	if (Combination{}).Valid() {
		t.Error("zero Combination should not be valid")
	}
}
