package chatbot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func toolNames(role string) []string {
	var names []string
	for _, t := range MarketplaceTools(role) {
		names = append(names, t.Function.Name)
	}
	return names
}

func TestMarketplaceToolsByRole(t *testing.T) {
	assert.Equal(t, []string{ToolSearchMentors, ToolGetMentorProfile, ToolGetMenteeMeetings}, toolNames("mentee"))
	assert.Equal(t, []string{ToolSearchMentors, ToolGetMentorProfile, ToolGetMentorMeetings}, toolNames("mentor"))
	assert.Equal(t, []string{ToolSearchMentors, ToolGetMentorProfile}, toolNames("admin"))
}
