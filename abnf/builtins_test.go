package abnf

import "testing"

func TestBuiltinsAlpha(t *testing.T) {
	alpha := Builtins()["ALPHA"]
	for _, r := range []rune{'a', 'z', 'A', 'Z'} {
		if !alpha.Contains([]rune{r}) {
			t.Fatalf("ALPHA should accept %q", r)
		}
	}
	for _, r := range []rune{'0', '9', '-', ' '} {
		if alpha.Contains([]rune{r}) {
			t.Fatalf("ALPHA should reject %q", r)
		}
	}
}

func TestBuiltinsHexDigCaseInsensitive(t *testing.T) {
	hexdig := Builtins()["HEXDIG"]
	for _, r := range []rune{'0', '9', 'a', 'f', 'A', 'F'} {
		if !hexdig.Contains([]rune{r}) {
			t.Fatalf("HEXDIG should accept %q", r)
		}
	}
	if hexdig.Contains([]rune{'g'}) || hexdig.Contains([]rune{'G'}) {
		t.Fatal("HEXDIG should reject 'g'/'G'")
	}
}

func TestBuiltinsCRLF(t *testing.T) {
	crlf := Builtins()["CRLF"]
	if !crlf.Contains([]rune("\r\n")) {
		t.Fatal("CRLF should accept \\r\\n")
	}
	if crlf.Contains([]rune("\n")) || crlf.Contains([]rune("\r")) {
		t.Fatal("CRLF should reject a bare CR or LF")
	}
}

func TestBuiltinsWSPAndLWSP(t *testing.T) {
	wsp := Builtins()["WSP"]
	if !wsp.Contains([]rune(" ")) || !wsp.Contains([]rune("\t")) {
		t.Fatal("WSP should accept space and tab")
	}
	lwsp := Builtins()["LWSP"]
	if !lwsp.Contains([]rune("")) {
		t.Fatal("LWSP should accept the empty string (zero repetitions)")
	}
	if !lwsp.Contains([]rune("  \t \r\n ")) {
		t.Fatal("LWSP should accept runs of WSP and folded CRLF WSP")
	}
}

func TestBuiltinsOctetFullRange(t *testing.T) {
	octet := Builtins()["OCTET"]
	if !octet.Contains([]rune{0}) || !octet.Contains([]rune{0xFF}) {
		t.Fatal("OCTET should accept the full 0x00-0xFF range")
	}
}

func TestIsCoreRuleCaseInsensitive(t *testing.T) {
	if !IsCoreRule("alpha") || !IsCoreRule("ALPHA") || !IsCoreRule("Alpha") {
		t.Fatal("IsCoreRule should match regardless of case")
	}
	if IsCoreRule("not-a-rule") {
		t.Fatal("IsCoreRule should reject an unknown name")
	}
}
