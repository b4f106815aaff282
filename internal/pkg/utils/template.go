package utils

import (
	"os"
	"path/filepath"
	"strings"

	"clinicare-service/internal/pkg/constvars"
	"clinicare-service/internal/pkg/exceptions"
)

// RenderEmailTemplate loads a named template file from the template directory
// (resolved against the working directory) and substitutes every
// {{placeholder}} with the mapped value. Unknown placeholders are left
// untouched so a missing mapping is visible in the delivered mail rather
// than silently blanked.
func RenderEmailTemplate(templateName string, values map[string]string) (string, error) {
	raw, err := os.ReadFile(filepath.Join(constvars.EmailTemplateDir, templateName))
	if err != nil {
		return "", exceptions.ErrTemplateNotFound(err, templateName)
	}

	return SubstitutePlaceholders(string(raw), values), nil
}

// SubstitutePlaceholders replaces {{name}} markers in content with the mapped
// values.
func SubstitutePlaceholders(content string, values map[string]string) string {
	replacements := make([]string, 0, len(values)*2)
	for name, value := range values {
		replacements = append(replacements, "{{"+name+"}}", value)
	}
	return strings.NewReplacer(replacements...).Replace(content)
}
