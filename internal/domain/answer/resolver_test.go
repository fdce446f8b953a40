package answer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolveMemberFirstToken(t *testing.T) {
	names := []string{"Alice Smith", "Bob Jones"}

	member, ok := ResolveMember("what did alice say", names)
	require.True(t, ok)
	require.Equal(t, "Alice Smith", member)
}

func TestResolveMemberFullName(t *testing.T) {
	member, ok := ResolveMember("remind me what bob jones promised", []string{"Alice Smith", "Bob Jones"})
	require.True(t, ok)
	require.Equal(t, "Bob Jones", member)
}

func TestResolveMemberNoMatch(t *testing.T) {
	_, ok := ResolveMember("what happened at standup", []string{"Alice Smith", "Bob Jones"})
	require.False(t, ok)
}

func TestResolveMemberEmptyCandidates(t *testing.T) {
	_, ok := ResolveMember("what did alice say", nil)
	require.False(t, ok)
}

func TestResolveMemberSkipsBlankNames(t *testing.T) {
	member, ok := ResolveMember("what did alice say", []string{"   ", "", "Alice Smith"})
	require.True(t, ok)
	require.Equal(t, "Alice Smith", member)
}

// Candidate order decides between overlapping names; the resolver makes no
// attempt to pick the more specific one.
func TestResolveMemberFirstMatchWins(t *testing.T) {
	member, ok := ResolveMember("did alice johnson file the report", []string{"Alice Smith", "Alice Johnson"})
	require.True(t, ok)
	require.Equal(t, "Alice Smith", member)
}
