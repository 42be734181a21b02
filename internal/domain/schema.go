package domain

// SchemaType enumerates the JSON value kinds structured generation supports.
type SchemaType string

const (
	TypeString SchemaType = "STRING"
	TypeObject SchemaType = "OBJECT"
	TypeArray  SchemaType = "ARRAY"
)

// Schema declares the shape a structured generation response must match. It
// is a small, explicit subset of JSON Schema: enough to pin object fields,
// required keys, array item shapes, and string enums.
type Schema struct {
	Type       SchemaType
	Properties map[string]*Schema
	Required   []string
	Items      *Schema
	Enum       []string
}

// QuizSchema returns the response schema for a quiz generation request of the
// given question type: a JSON array of question objects. Which fields are
// required depends on the type; only multiple-choice questions carry options,
// and the type field is pinned to the requested type.
func QuizSchema(questionType QuestionType) *Schema {
	properties := map[string]*Schema{
		"question": {Type: TypeString},
		"answer":   {Type: TypeString},
		"type":     {Type: TypeString, Enum: []string{string(questionType)}},
	}
	required := []string{"question", "answer", "type"}

	if questionType == QuestionTypeMultipleChoice {
		properties["options"] = &Schema{
			Type:  TypeArray,
			Items: &Schema{Type: TypeString},
		}
		required = append(required, "options")
	}

	return &Schema{
		Type: TypeArray,
		Items: &Schema{
			Type:       TypeObject,
			Properties: properties,
			Required:   required,
		},
	}
}

// FlashcardSchema returns the response schema for flashcard generation: a
// JSON array of {term, definition} objects, both fields required.
func FlashcardSchema() *Schema {
	return &Schema{
		Type: TypeArray,
		Items: &Schema{
			Type: TypeObject,
			Properties: map[string]*Schema{
				"term":       {Type: TypeString},
				"definition": {Type: TypeString},
			},
			Required: []string{"term", "definition"},
		},
	}
}
