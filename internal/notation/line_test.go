package notation

import "testing"

func TestClassifyLine_Blank(t *testing.T) {
	for _, line := range []string{"", "   ", "\t"} {
		if element, ok := ClassifyLine(line, 1); ok {
			t.Fatalf("expected blank skip for %q, got %#v", line, element)
		}
	}
}

func TestClassifyLine_Action(t *testing.T) {
	t.Run("glyph marker", func(t *testing.T) {
		element, ok := ClassifyLine("▶ Sneak past the guards", 4)
		if !ok {
			t.Fatal("expected element")
		}
		action, ok := element.(Action)
		if !ok {
			t.Fatalf("expected Action, got %#v", element)
		}
		if action.Content != "Sneak past the guards" {
			t.Fatalf("unexpected content %q", action.Content)
		}
		if action.Line() != 4 {
			t.Fatalf("unexpected line %d", action.Line())
		}
	})

	t.Run("ascii marker", func(t *testing.T) {
		element, _ := ClassifyLine("> Sneak past the guards", 4)
		action, ok := element.(Action)
		if !ok {
			t.Fatalf("expected Action, got %#v", element)
		}
		if action.Content != "Sneak past the guards" {
			t.Fatalf("unexpected content %q", action.Content)
		}
	})
}

func TestClassifyLine_OracleQuestion(t *testing.T) {
	element, _ := ClassifyLine("? Is the door locked?", 2)
	question, ok := element.(OracleQuestion)
	if !ok {
		t.Fatalf("expected OracleQuestion, got %#v", element)
	}
	if question.Question != "Is the door locked?" {
		t.Fatalf("unexpected question %q", question.Question)
	}
}

func TestClassifyLine_MechanicsRoll(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		roll    string
		outcome string
		success Success
	}{
		{"strong hit", "d: 2d10 => Strong hit", "2d10", "Strong hit", SuccessYes},
		{"success keyword", "d: 1d100 => 43, success", "1d100", "43, success", SuccessYes},
		{"failed", "d: 1d20 => Failed", "1d20", "Failed", SuccessNo},
		{"weak hit counts as failure", "d: 2d10 => Weak hit", "2d10", "Weak hit", SuccessNo},
		{"miss", "d: 2d6 => Miss", "2d6", "Miss", SuccessNo},
		{"bare number is unknown", "d: 2d10 => 5", "2d10", "5", SuccessUnknown},
		{"explicit S override", "d: 2d10 => 5 S", "2d10", "5 S", SuccessYes},
		{"explicit F override", "d: 2d10 => Strong hit F", "2d10", "Strong hit F", SuccessNo},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			element, _ := ClassifyLine(tc.line, 1)
			roll, ok := element.(MechanicsRoll)
			if !ok {
				t.Fatalf("expected MechanicsRoll, got %#v", element)
			}
			if roll.Roll != tc.roll || roll.Outcome != tc.outcome {
				t.Fatalf("got roll %q outcome %q", roll.Roll, roll.Outcome)
			}
			if roll.Success != tc.success {
				t.Fatalf("got success %v, want %v", roll.Success, tc.success)
			}
		})
	}
}

func TestClassifyLine_DiceComparison(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		outcome string
		success Success
	}{
		{"less than defaults to failure", "🎲2<4", "2<4", SuccessNo},
		{"greater than defaults to success", "🎲5>3", "5>3", SuccessYes},
		{"explicit S wins", "🎲2<4 S", "2<4", SuccessYes},
		{"explicit F wins", "🎲5>3 F", "5>3", SuccessNo},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			element, _ := ClassifyLine(tc.line, 1)
			roll, ok := element.(MechanicsRoll)
			if !ok {
				t.Fatalf("expected MechanicsRoll, got %#v", element)
			}
			if roll.Outcome != tc.outcome {
				t.Fatalf("got outcome %q, want %q", roll.Outcome, tc.outcome)
			}
			if roll.Success != tc.success {
				t.Fatalf("got success %v, want %v", roll.Success, tc.success)
			}
		})
	}
}

func TestClassifyLine_OracleResult(t *testing.T) {
	t.Run("leading roll notation", func(t *testing.T) {
		element, _ := ClassifyLine("⤷ (d6=4) Yes, but the hinges creak", 3)
		result, ok := element.(OracleResult)
		if !ok {
			t.Fatalf("expected OracleResult, got %#v", element)
		}
		if result.Roll != "d6=4" {
			t.Fatalf("unexpected roll %q", result.Roll)
		}
		if result.Answer != "Yes, but the hinges creak" {
			t.Fatalf("unexpected answer %q", result.Answer)
		}
	})

	t.Run("trailing roll notation", func(t *testing.T) {
		element, _ := ClassifyLine("-> No, and (d6=1)", 3)
		result := element.(OracleResult)
		if result.Answer != "No, and" || result.Roll != "d6=1" {
			t.Fatalf("got answer %q roll %q", result.Answer, result.Roll)
		}
	})

	t.Run("plain answer", func(t *testing.T) {
		element, _ := ClassifyLine("-> Yes", 3)
		result := element.(OracleResult)
		if result.Answer != "Yes" || result.Roll != "" {
			t.Fatalf("got answer %q roll %q", result.Answer, result.Roll)
		}
	})
}

func TestClassifyLine_Consequence(t *testing.T) {
	for _, line := range []string{"⇒ The alarm sounds", "=> The alarm sounds"} {
		element, _ := ClassifyLine(line, 9)
		consequence, ok := element.(Consequence)
		if !ok {
			t.Fatalf("expected Consequence for %q, got %#v", line, element)
		}
		if consequence.Description != "The alarm sounds" {
			t.Fatalf("unexpected description %q", consequence.Description)
		}
	}
}

func TestClassifyLine_TableLookup(t *testing.T) {
	for _, line := range []string{"tbl: 45 => Goblin camp", "📖 45 → Goblin camp"} {
		element, _ := ClassifyLine(line, 1)
		lookup, ok := element.(TableLookup)
		if !ok {
			t.Fatalf("expected TableLookup for %q, got %#v", line, element)
		}
		if lookup.Roll != "45" || lookup.Result != "Goblin camp" {
			t.Fatalf("got roll %q result %q", lookup.Roll, lookup.Result)
		}
	}
}

func TestClassifyLine_Generator(t *testing.T) {
	t.Run("ascii form", func(t *testing.T) {
		element, _ := ClassifyLine("gen: NPC name table 3 => Aldric", 1)
		gen, ok := element.(Generator)
		if !ok {
			t.Fatalf("expected Generator, got %#v", element)
		}
		if gen.System != "NPC name table 3" || gen.Result != "Aldric" {
			t.Fatalf("got system %q result %q", gen.System, gen.Result)
		}
	})

	t.Run("system may contain an arrow", func(t *testing.T) {
		element, _ := ClassifyLine("📚 town => district table → The Old Mill", 1)
		gen, ok := element.(Generator)
		if !ok {
			t.Fatalf("expected Generator, got %#v", element)
		}
		if gen.System != "town => district table" || gen.Result != "The Old Mill" {
			t.Fatalf("got system %q result %q", gen.System, gen.Result)
		}
	})
}

func TestClassifyLine_MetaNote(t *testing.T) {
	t.Run("categorized", func(t *testing.T) {
		element, _ := ClassifyLine("(note: check supply rules later)", 7)
		note, ok := element.(MetaNote)
		if !ok {
			t.Fatalf("expected MetaNote, got %#v", element)
		}
		if note.Category != "note" || note.Content != "check supply rules later" {
			t.Fatalf("got category %q content %q", note.Category, note.Content)
		}
		if note.ScanText() != "" {
			t.Fatal("meta notes must not be scanned for tags")
		}
	})

	t.Run("bare parenthetical is text", func(t *testing.T) {
		element, _ := ClassifyLine("(she hesitates)", 7)
		if _, ok := element.(TextLine); !ok {
			t.Fatalf("expected TextLine, got %#v", element)
		}
	})
}

func TestClassifyLine_Fallback(t *testing.T) {
	element, _ := ClassifyLine("The rain keeps falling.", 12)
	text, ok := element.(TextLine)
	if !ok {
		t.Fatalf("expected TextLine, got %#v", element)
	}
	if text.Content != "The rain keeps falling." {
		t.Fatalf("unexpected content %q", text.Content)
	}
	if text.Line() != 12 {
		t.Fatalf("unexpected line %d", text.Line())
	}
}
