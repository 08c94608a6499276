package validators

import "regexp"

var slugRE = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// IsValidSlug valida o identificador da página pública:
// minúsculas, dígitos e hífens internos ("maria-silva", "prof-joao2").
func IsValidSlug(slug string) bool {
	return len(slug) >= 3 && len(slug) <= 60 && slugRE.MatchString(slug)
}
