package chatbot

import (
	openai "github.com/sashabaranov/go-openai"
	"github.com/sashabaranov/go-openai/jsonschema"
)

const (
	ToolSearchMentors     = "search_mentors"
	ToolGetMentorProfile  = "get_mentor_profile"
	ToolGetMenteeMeetings = "get_mentee_meetings"
	ToolGetMentorMeetings = "get_mentor_meetings"
)

func functionTool(name, description string, params jsonschema.Definition) openai.Tool {
	return openai.Tool{
		Type: openai.ToolTypeFunction,
		Function: &openai.FunctionDefinition{
			Name:        name,
			Description: description,
			Parameters:  params,
		},
	}
}

// MarketplaceTools returns the tools a caller with the given role may use.
func MarketplaceTools(role string) []openai.Tool {
	tools := []openai.Tool{
		functionTool(ToolSearchMentors, "Search mentors by name, headline, company, skill or price range.", jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"query":     {Type: jsonschema.String, Description: "Free text matched against name, headline and company"},
				"skill":     {Type: jsonschema.String, Description: "A single skill, e.g. golang"},
				"min_price": {Type: jsonschema.Number, Description: "Lowest starting price"},
				"max_price": {Type: jsonschema.Number, Description: "Highest starting price"},
				"limit":     {Type: jsonschema.Integer, Description: "Maximum results, default 5"},
			},
		}),
		functionTool(ToolGetMentorProfile, "Get a mentor's profile, active plans and rating.", jsonschema.Definition{
			Type: jsonschema.Object,
			Properties: map[string]jsonschema.Definition{
				"mentor_id": {Type: jsonschema.String, Description: "Mentor user id (UUID)"},
			},
			Required: []string{"mentor_id"},
		}),
	}

	meetingFilter := jsonschema.Definition{
		Type: jsonschema.Object,
		Properties: map[string]jsonschema.Definition{
			"status": {
				Type:        jsonschema.String,
				Enum:        []string{"Pending", "Scheduled", "Completed", "Cancelled"},
				Description: "Optional status filter",
			},
		},
	}
	switch role {
	case "mentee":
		tools = append(tools, functionTool(ToolGetMenteeMeetings, "List the current mentee's meetings.", meetingFilter))
	case "mentor":
		tools = append(tools, functionTool(ToolGetMentorMeetings, "List the current mentor's meetings.", meetingFilter))
	}
	return tools
}
