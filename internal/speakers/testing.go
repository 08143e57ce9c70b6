package speakers

import (
	"database/sql"
	"path/filepath"
	"testing"
)

// Schema is the speaker table definition used by test fixtures.
const Schema = `
	CREATE TABLE prelegenci (
		id INTEGER PRIMARY KEY,
		prelegent TEXT NOT NULL,
		firma_instytucja TEXT,
		temat_prezentacji TEXT,
		problemy_wyzwania TEXT,
		mozliwosci_it_sprzedaz TEXT,
		zaczepka TEXT
	);
`

// Fixture is a speaker row inserted by NewTestDB. Nil pointers become NULL.
type Fixture struct {
	ID            int64
	Name          string
	Company       *string
	Topic         string
	Challenges    string
	Opportunities *string
	Hook          *string
}

// Ptr returns a pointer to s, for Fixture fields.
func Ptr(s string) *string { return &s }

// NewTestDB writes a speaker database containing fixtures to a temp dir and returns its path.
func NewTestDB(t testing.TB, fixtures ...Fixture) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "prelegenci.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()

	if _, err := db.Exec(Schema); err != nil {
		t.Fatalf("create schema: %v", err)
	}

	for _, f := range fixtures {
		_, err := db.Exec(`INSERT INTO prelegenci
			(id, prelegent, firma_instytucja, temat_prezentacji, problemy_wyzwania, mozliwosci_it_sprzedaz, zaczepka)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			f.ID, f.Name, f.Company, f.Topic, f.Challenges, f.Opportunities, f.Hook)
		if err != nil {
			t.Fatalf("insert %d: %v", f.ID, err)
		}
	}

	return path
}

// SampleFixtures is a small, varied speaker set shared by tests.
func SampleFixtures() []Fixture {
	return []Fixture{
		{ID: 1, Name: "Zofia Nowak", Company: Ptr("Acme"), Topic: "Cloud Security",
			Challenges: "Legacy IAM", Opportunities: Ptr("SOC as a service; Pentests"),
			Hook: Ptr("Ask about the breach drill")},
		{ID: 2, Name: "Adam Kowalski", Company: nil, Topic: "Data Mesh",
			Challenges: "Silos", Opportunities: nil, Hook: nil},
		{ID: 3, Name: "Łucja Wiśniewska", Company: Ptr("Globex"), Topic: "Edge AI",
			Challenges: "Latency", Opportunities: Ptr(" , ; "), Hook: Ptr("")},
		{ID: 4, Name: "Marek Zieliński", Company: Ptr("Acme"), Topic: "Platform Engineering",
			Challenges: "Toil", Opportunities: Ptr("A, B; C\nD, E, F, G"), Hook: Ptr("  ")},
		{ID: 5, Name: "Bartosz Lewandowski", Company: Ptr(""), Topic: "Observability",
			Challenges: "Alert fatigue", Opportunities: Ptr("Monitoring"), Hook: Ptr("Loves ŻUBRÓWKA dashboards")},
	}
}
