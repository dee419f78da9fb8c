package lang

import (
	"fmt"
	"path/filepath"
	"strings"
)

// extTable maps a lower-cased file extension to a registered language
// name (§6.2). ".h", which C and C++ share, maps to C. An extension the
// table lacks is not detected: Detect returns an error for it.
var extTable = map[string]string{
	".c":     "c",
	".h":     "c",
	".sh":    "bash",
	".bash":  "bash",
	".lua":   "lua",
	".mk":    "make",
	".mak":   "make",
}

// Detect resolves path to a registered language name. explicit, if
// nonempty, always wins (the CLI's --lang flag). Otherwise the file's
// extension is looked up in extTable; a bare "Makefile" (no extension) is
// recognized by stem the same way the reference's detectLanguage does for
// the make front-end.
func Detect(path, explicit string) (string, error) {
	if explicit != "" {
		if _, ok := registry[explicit]; !ok {
			return "", fmt.Errorf("unsupported language: %s", explicit)
		}
		return explicit, nil
	}

	base := strings.ToLower(filepath.Base(path))
	ext := strings.ToLower(filepath.Ext(path))
	stem := strings.TrimSuffix(base, ext)

	if strings.HasSuffix(stem, "makefile") {
		return "make", nil
	}
	if name, ok := extTable[ext]; ok {
		return name, nil
	}

	return "", fmt.Errorf("could not detect language for %q, use --lang", path)
}
