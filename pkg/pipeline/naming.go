package pipeline

import (
	"path/filepath"
	"strings"
)

// OutputPath returns the file path for the drawing called name. The
// extension of output is replaced by ext, and a non-empty name is inserted
// before it:
//
//	OutputPath("bellows_pattern.svg", ".pdf", "")            // bellows_pattern.pdf
//	OutputPath("bellows_pattern.svg", ".svg", "face2_right") // bellows_pattern_face2_right.svg
//	OutputPath("out/b.svg", ".png", "face1_top_page_1_2")    // out/b_face1_top_page_1_2.png
func OutputPath(output, ext, name string) string {
	base := strings.TrimSuffix(output, filepath.Ext(output))
	if name != "" {
		base += "_" + name
	}
	return base + ext
}

func joinName(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "_")
}
