package api

import (
	"github.com/lysyi3m/quote-comb/app/database"
)

type Handler struct {
	quoteRepo  database.QuoteRepository
	authorRepo database.AuthorRepository
}
