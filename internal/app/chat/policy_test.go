package chat_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/procurra/procurra-api/internal/app/chat"
	"github.com/procurra/procurra-api/internal/domain"
)

func activeSource() *domain.KnowledgeSource {
	return &domain.KnowledgeSource{
		Name:        "files/method-statement",
		URI:         "https://files.example/method-statement",
		MIMEType:    "application/pdf",
		DisplayName: "Comprehensive Method Statement",
		State:       domain.StateActive,
	}
}

func TestSessionSeedIdempotent(t *testing.T) {
	src := activeSource()

	first := chat.SessionSeed(src)
	second := chat.SessionSeed(src)

	if !reflect.DeepEqual(first, second) {
		t.Fatal("two seeds built from the same source must be structurally identical")
	}
}

func TestSessionSeedShape(t *testing.T) {
	src := activeSource()
	seed := chat.SessionSeed(src)

	if len(seed) < 4 {
		t.Fatalf("seed too short: %d turns", len(seed))
	}
	if len(seed)%2 != 0 {
		t.Fatalf("seed must hold complete user/model pairs, got %d turns", len(seed))
	}

	if seed[0].Role != domain.RoleUser || seed[0].Source != src {
		t.Fatalf("first turn must be a user turn carrying the source, got %+v", seed[0])
	}
	if !strings.Contains(seed[0].Text, "Procurra") {
		t.Fatal("grounding turn must carry the persona instructions")
	}

	for i, turn := range seed {
		want := domain.RoleUser
		if i%2 == 1 {
			want = domain.RoleModel
		}
		if turn.Role != want {
			t.Fatalf("turn %d: expected role %s, got %s", i, want, turn.Role)
		}
		if i > 0 && turn.Source != nil {
			t.Fatalf("turn %d: only the grounding turn may reference the source", i)
		}
	}
}

func TestSessionSeedIncludesCuringExemplar(t *testing.T) {
	seed := chat.SessionSeed(activeSource())

	for i, turn := range seed {
		if turn.Role == domain.RoleUser && strings.Contains(turn.Text, "recommended curing period for concrete?") {
			if i+1 >= len(seed) || seed[i+1].Role != domain.RoleModel {
				t.Fatal("curing exemplar question must be followed by a model reply")
			}
			return
		}
	}
	t.Fatal("seed must include the curing-period exemplar exchange")
}
