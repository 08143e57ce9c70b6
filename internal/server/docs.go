package server

// @title speakerdir API
// @version 1.0
// @description Read-only search over a conference speaker directory stored in SQLite.
// @description
// @description Features:
// @description - Free-text search with exact company filters
// @description - Hook statistics and raw row inspection for data debugging
// @description - Bundled static frontend
//
// @host localhost:5000
// @BasePath /
