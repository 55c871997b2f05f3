package api

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lysyi3m/quote-comb/app/database"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

func NewHandler(quoteRepo database.QuoteRepository, authorRepo database.AuthorRepository) *Handler {
	return &Handler{
		quoteRepo:  quoteRepo,
		authorRepo: authorRepo,
	}
}

func (h *Handler) GetQuotes(c *gin.Context) {
	category := c.Param("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing category parameter"})
		return
	}

	limit := parseIntQuery(c, "limit", defaultPageSize)
	if limit < 1 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	offset := parseIntQuery(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	search := c.Query("q")

	quotes, err := h.quoteRepo.GetQuotes(category, search, limit, offset)
	if err != nil {
		slog.Error("Database error", "operation", "get_quotes", "category", category, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	total, err := h.quoteRepo.GetQuoteCount(category)
	if err != nil {
		slog.Error("Database error", "operation", "get_quote_count", "category", category, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	items := make([]map[string]interface{}, 0, len(quotes))
	for _, quote := range quotes {
		items = append(items, quoteJSON(quote))
	}

	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"quotes":   items,
		"count":    len(items),
		"total":    total,
		"limit":    limit,
		"offset":   offset,
	})
}

func (h *Handler) GetRandomQuote(c *gin.Context) {
	quote, err := h.quoteRepo.GetRandomQuote()
	if err != nil {
		slog.Error("Database error", "operation", "get_random_quote", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if quote == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No quotes archived yet"})
		return
	}

	c.JSON(http.StatusOK, quoteJSON(*quote))
}

func (h *Handler) GetCategories(c *gin.Context) {
	categories, err := h.quoteRepo.GetCategories()
	if err != nil {
		slog.Error("Database error", "operation", "get_categories", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	items := make([]map[string]interface{}, 0, len(categories))
	for _, category := range categories {
		items = append(items, map[string]interface{}{
			"category": category.Category,
			"count":    category.Count,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": items,
		"total":      len(items),
	})
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if quoteCount, err := h.quoteRepo.GetQuoteCount(""); err == nil {
		health["quotes"] = quoteCount
	}

	if authorCount, err := h.authorRepo.GetAuthorCount(); err == nil {
		health["authors"] = authorCount
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.quoteRepo.GetStats()
	if err != nil {
		slog.Error("Database error", "operation", "get_stats", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	response := map[string]interface{}{
		"quotes":     stats.Quotes,
		"categories": stats.Categories,
		"authors":    stats.Authors,
	}

	if counts, err := h.authorRepo.GetBioStatusCounts(); err == nil {
		response["bios"] = counts
	}

	c.JSON(http.StatusOK, response)
}

func quoteJSON(quote database.Quote) map[string]interface{} {
	tags := quote.Tags
	if tags == nil {
		tags = []string{}
	}

	item := map[string]interface{}{
		"id":          quote.ID,
		"quote":       quote.Text,
		"author":      quote.Author,
		"category":    quote.Category,
		"tags":        tags,
		"likes":       quote.Likes,
		"length":      quote.Length,
		"archived_at": quote.CreatedAt.Format(time.RFC3339),
	}

	if quote.ImageURL != "" {
		item["image_url"] = quote.ImageURL
	}
	if quote.AuthorURL != "" {
		item["author_url"] = quote.AuthorURL
	}

	return item
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}

	return value
}
