package fonts

import "testing"

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{Regular, Small, Score, Title, Banner} {
		if !Loaded(name) {
			t.Errorf("font %s not loaded", name)
		}
		if name.Get() == nil {
			t.Errorf("font %s has no face", name)
		}
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Fatal("expected a parse error")
	}
	if Loaded("broken") {
		t.Fatal("broken font was registered")
	}
}

func TestMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an unknown font")
		}
	}()
	FontName("missing").Get()
}
