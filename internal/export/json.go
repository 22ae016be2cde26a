package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/geodesic/internal/scene"
)

func WriteFigureJSON(w io.Writer, fig *scene.Figure) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(fig)
}

func WriteFigureJSONFile(path string, fig *scene.Figure) error {
	return writeAtomic(path, func(w io.Writer) error {
		return WriteFigureJSON(w, fig)
	})
}
