package books

import (
	"math"
	"math/rand"
	"strconv"
	"strings"
)

// isbnBounds are the inclusive upper bounds of the five ISBN groups.
var isbnBounds = [...]float64{1e3, 1e1, 1e4, 1e4, 1e1}

// GenerateISBN returns a pseudo ISBN such as "ISBN 482-3-9120-77-10".
// The groups are random and never checked for collisions.
func GenerateISBN() string {
	return generateISBN(rand.Float64)
}

func generateISBN(draw func() float64) string {

	groups := make([]string, len(isbnBounds))
	for i, bound := range isbnBounds {
		groups[i] = strconv.Itoa(int(math.Round(draw() * bound)))
	}

	return "ISBN " + strings.Join(groups, "-")
}
