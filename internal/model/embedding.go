package model

import (
	"hash/fnv"
	"math"
	"strings"
	"unicode"

	pgvector "github.com/pgvector/pgvector-go"
)

// EmbeddingDims is the width of the recipes.embedding column.
const EmbeddingDims = 16

// GenerateEmbedding hashes each word of text into one of EmbeddingDims
// buckets and normalizes the counts to unit length. Texts that share words
// (an ingredient, a cuisine, a tag) end up closer under L2 distance.
// Text without words yields the zero vector.
func GenerateEmbedding(text string) pgvector.Vector {
	vec := make([]float32, EmbeddingDims)
	words := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for _, w := range words {
		h := fnv.New32a()
		_, _ = h.Write([]byte(w))
		vec[h.Sum32()%EmbeddingDims]++
	}

	var sum float64
	for _, v := range vec {
		sum += float64(v) * float64(v)
	}
	if sum > 0 {
		scale := float32(1 / math.Sqrt(sum))
		for i := range vec {
			vec[i] *= scale
		}
	}
	return pgvector.NewVector(vec)
}
