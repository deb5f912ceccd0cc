package assistant

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywordMatch(t *testing.T) {
	a := New()

	reply := a.Reply(PortalPatient, "How do I book an appointment?")
	assert.Contains(t, reply, "Find Doctors")

	reply = a.Reply(PortalDoctor, "where are my pending requests")
	assert.Contains(t, reply, "Pending queue")

	reply = a.Reply(PortalPharmacy, "this batch looks counterfeit")
	assert.Contains(t, reply, "batch code")
}

func TestMatchingIsCaseInsensitive(t *testing.T) {
	a := New()
	assert.Equal(t, a.Reply(PortalPatient, "CANCEL my visit"), a.Reply(PortalPatient, "cancel my visit"))
}

func TestFallbackPerPortal(t *testing.T) {
	a := New()

	for _, portal := range []string{PortalPatient, PortalDoctor, PortalPharmacy} {
		reply := a.Reply(portal, "zzz nothing matches this")
		assert.NotEmpty(t, reply, portal)
		assert.True(t, strings.Contains(reply, "help") || strings.Contains(reply, "Type"), portal)
	}
}

func TestUnknownPortalGetsPatientFallback(t *testing.T) {
	a := New()
	assert.Equal(t, a.fallbacks[PortalPatient], a.Reply("admin", "hello"))
}

func TestIsValidPortal(t *testing.T) {
	assert.True(t, IsValidPortal(PortalPatient))
	assert.True(t, IsValidPortal(PortalPharmacy))
	assert.False(t, IsValidPortal("admin"))
}
