package format

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/doubledesc/dd/coordmap"
)

// ParseMaps parses a MAPS: section's lines into coordmap.Maps. Each
// line is one Map; its images are separated by "|" and each image is a
// whitespace-separated list of "index:factor" terms. dimension is the
// internal row length (coordinates plus the homogenizing/rhs slot),
// which must equal the number of images per map.
//
// This grammar is this repository's own addition — no maps-section
// format survives in original_source — chosen because it mirrors
// coordmap.Term's (index, factor) pair directly and needs no
// additional lexical machinery beyond what VERTEX_PERMUTATIONS already
// uses (see DESIGN.md).
func ParseMaps(lines []string, dimension int) ([]coordmap.Map, error) {
	maps := make([]coordmap.Map, 0, len(lines))
	for _, line := range lines {
		imageTexts := strings.Split(line, "|")
		if len(imageTexts) != dimension {
			return nil, fmt.Errorf("%w: expected %d images, got %d in %q", ErrInvalidMap, dimension, len(imageTexts), line)
		}
		images := make([]coordmap.Image, len(imageTexts))
		for i, text := range imageTexts {
			img, err := parseImage(text)
			if err != nil {
				return nil, err
			}
			images[i] = img
		}
		maps = append(maps, coordmap.Map{Images: images})
	}
	return maps, nil
}

func parseImage(text string) (coordmap.Image, error) {
	fields := strings.Fields(text)
	img := make(coordmap.Image, 0, len(fields))
	for _, f := range fields {
		parts := strings.SplitN(f, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("%w: malformed term %q (want index:factor)", ErrInvalidMap, f)
		}
		idx, err := strconv.Atoi(parts[0])
		if err != nil {
			return nil, fmt.Errorf("%w: malformed index in %q", ErrInvalidMap, f)
		}
		factor, ok := new(big.Int).SetString(parts[1], 10)
		if !ok {
			return nil, fmt.Errorf("%w: malformed factor in %q", ErrInvalidMap, f)
		}
		img = append(img, coordmap.Term{Index: idx, Factor: factor})
	}
	return img, nil
}
