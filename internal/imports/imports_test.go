package imports

import (
	"bytes"
	"strings"
	"testing"

	apperrors "orgbook-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRowValue(t *testing.T) {
	row := Row{
		"Name":        "  Jane Doe ",
		"reports to":  "Ada",
		"Reports To":  "",
		"JOB TITLE":   "Engineer",
		"Description": "",
	}

	assert.Equal(t, "Jane Doe", row.Value("Name", "name"))
	assert.Equal(t, "Ada", row.Value("Reports To", "reportsTo", "reports to"))
	assert.Equal(t, "Engineer", row.Value("Job Title", "jobTitle", "job title"))
	assert.Equal(t, "", row.Value("Description", "description"))
	assert.Equal(t, "", row.Value("missing"))
	assert.False(t, row.IsBlank())
	assert.True(t, Row{"a": " ", "b": ""}.IsBlank())
}

func buildWorkbook(t *testing.T, sheet string, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		idx, err := f.NewSheet(sheet)
		require.NoError(t, err)
		f.SetActiveSheet(idx)
		require.NoError(t, f.DeleteSheet("Sheet1"))
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		values := r
		require.NoError(t, f.SetSheetRow(sheet, cell, &values))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

func TestReadSheet_Workbook(t *testing.T) {
	buf := buildWorkbook(t, "Skills", [][]interface{}{
		{"Name", "Skill", "Level"},
		{"Doe, Jane", "Rust"},
		{"", "", ""},
		{"jane doe", "Rust", "expert"},
	})

	rows, err := ReadSheet(buf, "skills.XLSX")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Doe, Jane", rows[0]["Name"])
	assert.Equal(t, "Rust", rows[0]["Skill"])
	assert.Equal(t, "", rows[0]["Level"], "ragged rows are padded with empty cells")
	assert.Equal(t, "expert", rows[1]["Level"])
}

func TestReadSheet_CSV(t *testing.T) {
	input := "\ufeffcomponent,description,product manager\n" +
		"Billing,Invoices and payments,Ada Lovelace\n" +
		",,\n" +
		"Search,Full text,\n"

	rows, err := ReadSheet(strings.NewReader(input), "components.csv")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Billing", rows[0].Value("Component", "component"))
	assert.Equal(t, "Ada Lovelace", rows[0].Value("Product Manager", "product manager"))
	assert.Equal(t, "", rows[1].Value("product manager"))
}

func TestReadSheet_Errors(t *testing.T) {
	t.Run("unsupported extension", func(t *testing.T) {
		_, err := ReadSheet(strings.NewReader("x"), "people.pdf")
		assert.True(t, apperrors.IsMalformedImport(err))
		assert.ErrorIs(t, err, apperrors.ErrUnsupportedSheetType)
	})

	t.Run("corrupt workbook", func(t *testing.T) {
		_, err := ReadSheet(strings.NewReader("not a zip"), "people.xlsx")
		assert.True(t, apperrors.IsMalformedImport(err))
	})

	t.Run("broken csv quoting", func(t *testing.T) {
		_, err := ReadSheet(strings.NewReader("name\n\"unterminated\n"), "people.csv")
		assert.True(t, apperrors.IsMalformedImport(err))
	})

	t.Run("empty csv", func(t *testing.T) {
		rows, err := ReadSheet(strings.NewReader(""), "people.csv")
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestParseCodeOwners(t *testing.T) {
	t.Run("JSON keeps group order", func(t *testing.T) {
		doc := "{\n\t\"groups\": {\n\t\t\"frontend\": [\"@john.smith\"],\n\t\t\"backend\": [\"@jane.doe\", \"@john.smith\"]\n\t}\n}"

		owners, err := ParseCodeOwners(strings.NewReader(doc), "codeowners.json")
		require.NoError(t, err)
		require.Len(t, owners.Groups, 2)
		assert.Equal(t, "frontend", owners.Groups[0].Name)
		assert.Equal(t, "backend", owners.Groups[1].Name)
		assert.Equal(t, []string{"@jane.doe", "@john.smith"}, owners.Groups[1].Handles)
	})

	t.Run("YAML document", func(t *testing.T) {
		doc := "groups:\n  platform:\n    - \"@ada.lovelace\"\n  empty: []\n  nulled:\n"

		owners, err := ParseCodeOwners(strings.NewReader(doc), "codeowners.yaml")
		require.NoError(t, err)
		require.Len(t, owners.Groups, 3)
		assert.Equal(t, []string{"@ada.lovelace"}, owners.Groups[0].Handles)
		assert.Empty(t, owners.Groups[1].Handles)
		assert.Empty(t, owners.Groups[2].Handles)
	})

	t.Run("missing groups is empty", func(t *testing.T) {
		owners, err := ParseCodeOwners(strings.NewReader(`{"version": 2}`), "codeowners.json")
		require.NoError(t, err)
		assert.Empty(t, owners.Groups)
	})

	testCases := []struct {
		name string
		doc  string
	}{
		{name: "empty input", doc: ""},
		{name: "not an object", doc: `["@jane.doe"]`},
		{name: "groups not an object", doc: `{"groups": ["a"]}`},
		{name: "members not a list", doc: `{"groups": {"backend": "@jane.doe"}}`},
		{name: "nested handle", doc: `{"groups": {"backend": [["@jane.doe"]]}}`},
		{name: "syntax error", doc: `{"groups": {`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCodeOwners(strings.NewReader(tc.doc), "codeowners.json")
			assert.True(t, apperrors.IsMalformedImport(err), "got %v", err)
		})
	}
}
