package catalog

// The built-in catalog mirrors the most popular quote tags. A YAML file
// can replace it entirely, see Load.
var builtinCategories = []Category{
	{Number: 1, Name: "Love Quotes", URL: "https://www.goodreads.com/quotes/tag/love"},
	{Number: 2, Name: "Life Quotes", URL: "https://www.goodreads.com/quotes/tag/life"},
	{Number: 3, Name: "Inspirational Quotes", URL: "https://www.goodreads.com/quotes/tag/inspirational"},
	{Number: 4, Name: "Humor Quotes", URL: "https://www.goodreads.com/quotes/tag/humor"},
	{Number: 5, Name: "Philosophy Quotes", URL: "https://www.goodreads.com/quotes/tag/philosophy"},
	{Number: 6, Name: "Inspirational Quotes Quotes", URL: "https://www.goodreads.com/quotes/tag/inspirational-quotes"},
	{Number: 7, Name: "God Quotes", URL: "https://www.goodreads.com/quotes/tag/god"},
	{Number: 8, Name: "Truth Quotes", URL: "https://www.goodreads.com/quotes/tag/truth"},
	{Number: 9, Name: "Wisdom Quotes", URL: "https://www.goodreads.com/quotes/tag/wisdom"},
	{Number: 10, Name: "Romance Quotes", URL: "https://www.goodreads.com/quotes/tag/romance"},
	{Number: 11, Name: "Poetry Quotes", URL: "https://www.goodreads.com/quotes/tag/poetry"},
	{Number: 12, Name: "Life Lessons Quotes", URL: "https://www.goodreads.com/quotes/tag/life-lessons"},
	{Number: 13, Name: "Death Quotes", URL: "https://www.goodreads.com/quotes/tag/death"},
	{Number: 14, Name: "Happiness Quotes", URL: "https://www.goodreads.com/quotes/tag/happiness"},
	{Number: 15, Name: "Hope Quotes", URL: "https://www.goodreads.com/quotes/tag/hope"},
	{Number: 16, Name: "Faith Quotes", URL: "https://www.goodreads.com/quotes/tag/faith"},
	{Number: 17, Name: "Inspiration Quotes", URL: "https://www.goodreads.com/quotes/tag/inspiration"},
	{Number: 18, Name: "Spirituality Quotes", URL: "https://www.goodreads.com/quotes/tag/spirituality"},
	{Number: 19, Name: "Relationships Quotes", URL: "https://www.goodreads.com/quotes/tag/relationships"},
	{Number: 20, Name: "Life Quotes Quotes", URL: "https://www.goodreads.com/quotes/tag/life-quotes"},
	{Number: 21, Name: "Motivational Quotes", URL: "https://www.goodreads.com/quotes/tag/motivational"},
	{Number: 22, Name: "Religion Quotes", URL: "https://www.goodreads.com/quotes/tag/religion"},
	{Number: 23, Name: "Love Quotes Quotes", URL: "https://www.goodreads.com/quotes/tag/love-quotes"},
	{Number: 24, Name: "Writing Quotes", URL: "https://www.goodreads.com/quotes/tag/writing"},
	{Number: 25, Name: "Success Quotes", URL: "https://www.goodreads.com/quotes/tag/success"},
	{Number: 26, Name: "Travel Quotes", URL: "https://www.goodreads.com/quotes/tag/travel"},
	{Number: 27, Name: "Motivation Quotes", URL: "https://www.goodreads.com/quotes/tag/motivation"},
	{Number: 28, Name: "Time Quotes", URL: "https://www.goodreads.com/quotes/tag/time"},
	{Number: 29, Name: "Motivational Quotes Quotes", URL: "https://www.goodreads.com/quotes/tag/motivational-quotes"},
}
