package parser

import "testing"

func TestLex_Tokens(t *testing.T) {
	tokens, err := lex("  (MIT OR Apache-2.0+) ")
	if err != nil {
		t.Fatalf("lex() failed: %v", err)
	}

	want := []struct {
		kind  tokenKind
		text  string
		start int
	}{
		{tokenLParen, "(", 2},
		{tokenIdent, "MIT", 3},
		{tokenIdent, "OR", 7},
		{tokenIdent, "Apache-2.0", 10},
		{tokenPlus, "+", 20},
		{tokenRParen, ")", 21},
		{tokenEOF, "", 23},
	}
	if len(tokens) != len(want) {
		t.Fatalf("len(tokens) = %d, want %d", len(tokens), len(want))
	}
	for i, w := range want {
		if tokens[i].kind != w.kind {
			t.Errorf("tokens[%d].kind = %v, want %v", i, tokens[i].kind, w.kind)
		}
		if tokens[i].text != w.text {
			t.Errorf("tokens[%d].text = %q, want %q", i, tokens[i].text, w.text)
		}
		if tokens[i].start != w.start {
			t.Errorf("tokens[%d].start = %d, want %d", i, tokens[i].start, w.start)
		}
	}
}

func TestLex_DocumentRef(t *testing.T) {
	tokens, err := lex("DocumentRef-doc:LicenseRef-mine")
	if err != nil {
		t.Fatalf("lex() failed: %v", err)
	}
	// ident, colon, ident, EOF
	if len(tokens) != 4 {
		t.Fatalf("len(tokens) = %d, want 4", len(tokens))
	}
	if tokens[0].text != "DocumentRef-doc" || tokens[1].kind != tokenColon || tokens[2].text != "LicenseRef-mine" {
		t.Errorf("unexpected token stream: %+v", tokens)
	}
	// adjacency metadata the parser relies on
	if tokens[1].start != tokens[0].end() {
		t.Errorf("colon not adjacent: start %d, prev end %d", tokens[1].start, tokens[0].end())
	}
	if tokens[2].start != tokens[1].end() {
		t.Errorf("ref not adjacent: start %d, colon end %d", tokens[2].start, tokens[1].end())
	}
}

func TestLex_InvalidCharacter(t *testing.T) {
	_, err := lex("MIT & Apache-2.0")
	if err == nil {
		t.Fatal("lex() accepted '&'")
	}
	if err.Offset != 4 {
		t.Errorf("err.Offset = %d, want 4", err.Offset)
	}
}

func TestLex_Empty(t *testing.T) {
	tokens, err := lex("   ")
	if err != nil {
		t.Fatalf("lex() failed: %v", err)
	}
	if len(tokens) != 1 || tokens[0].kind != tokenEOF {
		t.Errorf("blank input should lex to EOF only, got %+v", tokens)
	}
}
