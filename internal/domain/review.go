package domain

import (
	"fmt"
	"hash/fnv"
)

// Review is embedded in a product's presentation only; it is never persisted.
type Review struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	AvatarURL string `json:"avatarUrl"`
	Rating    int    `json:"rating"` // 1-5
	Comment   string `json:"comment"`
}

var reviewAuthors = []string{
	"Carlos Almeida", "Mariana Rocha", "João Pereira",
	"Ana Lima", "Rafael Souza", "Beatriz Castro",
}

var reviewComments = []string{
	"Produto de qualidade, entrega rápida.",
	"Exatamente como descrito, recomendo.",
	"Bom preço, voltarei a comprar.",
	"Atendimento excelente da distribuidora.",
	"Chegou bem embalado, tudo certo.",
	"Ótimo custo-benefício.",
}

// PlaceholderReviews derives a deterministic set of presentation reviews
// from the product id, so the same product always shows the same reviews.
func PlaceholderReviews(productID string) []Review {
	h := fnv.New32a()
	_, _ = h.Write([]byte(productID))
	seed := h.Sum32()

	n := 2 + int(seed%2)
	out := make([]Review, 0, n)
	for i := 0; i < n; i++ {
		author := reviewAuthors[int(seed>>uint(i))%len(reviewAuthors)]
		out = append(out, Review{
			ID:        fmt.Sprintf("%s-rev-%d", productID, i+1),
			Author:    author,
			AvatarURL: fmt.Sprintf("https://i.pravatar.cc/40?u=%s-%d", productID, i),
			Rating:    3 + int(seed>>uint(2*i))%3,
			Comment:   reviewComments[int(seed>>uint(i+1))%len(reviewComments)],
		})
	}
	return out
}
