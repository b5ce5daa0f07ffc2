package board

// JSON schemas applied to ingress payloads before they reach the
// repositories. They check shape only; referential integrity is deliberately
// not enforced anywhere.

var registerSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"email", "name", "role"},
	"properties": map[string]interface{}{
		"email": map[string]interface{}{
			"type":      "string",
			"minLength": 3,
			"pattern":   `^[^@\s]+@[^@\s]+$`,
		},
		"name": map[string]interface{}{
			"type":      "string",
			"minLength": 1,
		},
		"role": map[string]interface{}{
			"type": "string",
			"enum": []interface{}{"student", "company"},
		},
		"credential": map[string]interface{}{
			"type": "string",
		},
		"student": map[string]interface{}{
			"type": "object",
		},
		"company": map[string]interface{}{
			"type": "object",
		},
	},
}

var jobSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"id", "companyId", "title"},
	"properties": map[string]interface{}{
		"id": map[string]interface{}{
			"type":      "string",
			"minLength": 1,
		},
		"companyId": map[string]interface{}{
			"type":      "string",
			"minLength": 1,
		},
		"title": map[string]interface{}{
			"type":      "string",
			"minLength": 1,
		},
		"requirements": map[string]interface{}{
			"type":  "array",
			"items": map[string]interface{}{"type": "string"},
		},
		"status": map[string]interface{}{
			"type": "string",
			"enum": []interface{}{"active", "closed"},
		},
	},
}
