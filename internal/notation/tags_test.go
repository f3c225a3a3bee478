package notation

import (
	"reflect"
	"testing"
)

func TestExtractMentions_NPC(t *testing.T) {
	mentions := ExtractMentions("▶ Talk to [N:Grim|friendly|merchant] at the gate")
	if len(mentions) != 1 {
		t.Fatalf("expected 1 mention, got %d", len(mentions))
	}
	m := mentions[0]
	if m.Kind != EntityNPC || m.Key != "npc:grim" || m.Name != "Grim" {
		t.Fatalf("unexpected mention %#v", m)
	}
	if !reflect.DeepEqual(m.Tags, []string{"friendly", "merchant"}) {
		t.Fatalf("unexpected tags %v", m.Tags)
	}
}

func TestExtractMentions_KindKeywordsAreCaseSensitive(t *testing.T) {
	if mentions := ExtractMentions("[n:grim] [l:woods] [thread:x|Open]"); len(mentions) != 0 {
		t.Fatalf("lowercase keywords must not match, got %v", mentions)
	}
}

func TestExtractMentions_Order(t *testing.T) {
	mentions := ExtractMentions("[L:Dark Woods] then [N:Grim] then [PC:Ash|wounded]")
	if len(mentions) != 3 {
		t.Fatalf("expected 3 mentions, got %d", len(mentions))
	}
	keys := []string{mentions[0].Key, mentions[1].Key, mentions[2].Key}
	want := []string{"location:dark woods", "npc:grim", "pc:ash"}
	if !reflect.DeepEqual(keys, want) {
		t.Fatalf("got %v, want %v", keys, want)
	}
}

func TestExtractMentions_Thread(t *testing.T) {
	t.Run("with state", func(t *testing.T) {
		mentions := ExtractMentions("[Thread:Discover the Source|Open]")
		if len(mentions) != 1 {
			t.Fatalf("expected 1 mention, got %d", len(mentions))
		}
		m := mentions[0]
		if m.Key != "thread:discover the source" || m.State != "Open" {
			t.Fatalf("unexpected mention %#v", m)
		}
	})

	t.Run("missing state is dropped", func(t *testing.T) {
		if mentions := ExtractMentions("[Thread:Dangling]"); len(mentions) != 0 {
			t.Fatalf("expected no mentions, got %v", mentions)
		}
	})
}

func TestExtractMentions_ProgressForms(t *testing.T) {
	t.Run("space separated", func(t *testing.T) {
		mentions := ExtractMentions("[Clock:Forest Ritual 3/6]")
		if len(mentions) != 1 {
			t.Fatalf("expected 1 mention, got %d", len(mentions))
		}
		m := mentions[0]
		if m.Key != "clock:forest ritual" || m.Current != 3 || m.Total != 6 {
			t.Fatalf("unexpected mention %#v", m)
		}
	})

	t.Run("pipe separated", func(t *testing.T) {
		mentions := ExtractMentions("[Clock:Forest Ritual|4/6]")
		if len(mentions) != 1 {
			t.Fatalf("expected 1 mention, got %d", len(mentions))
		}
		m := mentions[0]
		if m.Key != "clock:forest ritual" || m.Current != 4 || m.Total != 6 {
			t.Fatalf("unexpected mention %#v", m)
		}
	})

	t.Run("track and event share the shape", func(t *testing.T) {
		mentions := ExtractMentions("[Track:Journey 2/10] [E:Uprising|1/4]")
		if len(mentions) != 2 {
			t.Fatalf("expected 2 mentions, got %d", len(mentions))
		}
		if mentions[0].Kind != EntityTrack || mentions[1].Kind != EntityEvent {
			t.Fatalf("unexpected kinds %v %v", mentions[0].Kind, mentions[1].Kind)
		}
	})

	t.Run("missing numbers is dropped", func(t *testing.T) {
		if mentions := ExtractMentions("[Clock:Broken]"); len(mentions) != 0 {
			t.Fatalf("expected no mentions, got %v", mentions)
		}
	})
}

func TestExtractMentions_Timer(t *testing.T) {
	mentions := ExtractMentions("[Timer:Ambush 2]")
	if len(mentions) != 1 {
		t.Fatalf("expected 1 mention, got %d", len(mentions))
	}
	m := mentions[0]
	if m.Kind != EntityTimer || m.Key != "timer:ambush" || m.Value != 2 {
		t.Fatalf("unexpected mention %#v", m)
	}
}

func TestExtractMentions_BackReferences(t *testing.T) {
	mentions := ExtractMentions("▶ Return to [#L:Dark Woods] and find [#N:Grim]")
	if len(mentions) != 2 {
		t.Fatalf("expected 2 mentions, got %d", len(mentions))
	}
	if !mentions[0].Ref || mentions[0].Key != "location:dark woods" {
		t.Fatalf("unexpected mention %#v", mentions[0])
	}
	if !mentions[1].Ref || mentions[1].Key != "npc:grim" {
		t.Fatalf("unexpected mention %#v", mentions[1])
	}
}

func TestExtractMentions_MalformedTags(t *testing.T) {
	mentions := ExtractMentions("[N:] [L:] [Thread:]")
	if len(mentions) != 0 {
		t.Fatalf("expected no mentions, got %v", mentions)
	}
}

func TestExtractMentions_NameTrimming(t *testing.T) {
	mentions := ExtractMentions("[N:  Grim  | friendly ]")
	if len(mentions) != 1 {
		t.Fatalf("expected 1 mention, got %d", len(mentions))
	}
	m := mentions[0]
	if m.Name != "Grim" || m.Key != "npc:grim" {
		t.Fatalf("unexpected mention %#v", m)
	}
	if !reflect.DeepEqual(m.Tags, []string{"friendly"}) {
		t.Fatalf("unexpected tags %v", m.Tags)
	}
}

func TestIsReference(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"[#N:Grim]", true},
		{"[#L:Dark Woods]", true},
		{"  [#N:Grim]  ", true},
		{"[N:Grim]", false},
		{"[#Thread:X]", false},
		{"see [#N:Grim] here", false},
		{"plain text", false},
	}
	for _, tc := range tests {
		if got := IsReference(tc.text); got != tc.want {
			t.Fatalf("IsReference(%q) = %v, want %v", tc.text, got, tc.want)
		}
	}
}
