package invoice

import (
	"testing"
	"time"

	"github.com/jomei/notionapi"
	"github.com/stretchr/testify/assert"
)

func TestInvoiceFromPage(t *testing.T) {
	issued := notionapi.Date(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC))

	page := &notionapi.Page{
		ID: "25a8fe3b-cf0c-4e0f-9d0b-b812fd0fb12c",
		Properties: notionapi.Properties{
			propNumber: &notionapi.TitleProperty{
				Title: []notionapi.RichText{{PlainText: "INV-"}, {PlainText: "042"}},
			},
			propClient: &notionapi.RichTextProperty{
				RichText: []notionapi.RichText{{PlainText: "Acme Corp"}},
			},
			propStatus: &notionapi.SelectProperty{
				Select: notionapi.Option{Name: "Paid"},
			},
			propIssueDate: &notionapi.DateProperty{
				Date: &notionapi.DateObject{Start: &issued},
			},
			propTotal: &notionapi.NumberProperty{Number: 1250.5},
			propCurrency: &notionapi.SelectProperty{
				Select: notionapi.Option{Name: "USD"},
			},
		},
	}

	inv := invoiceFromPage(page)

	assert.Equal(t, "25a8fe3bcf0c4e0f9d0bb812fd0fb12c", inv.ID)
	assert.Equal(t, "INV-042", inv.Number)
	assert.Equal(t, "Acme Corp", inv.Client)
	assert.Equal(t, "Paid", inv.Status)
	assert.Equal(t, 1250.5, inv.Total)
	assert.Equal(t, "USD", inv.Currency)
	if assert.NotNil(t, inv.IssueDate) {
		assert.Equal(t, time.Time(issued), *inv.IssueDate)
	}
	assert.Nil(t, inv.DueDate)
}

func TestInvoiceFromPage_MissingProperties(t *testing.T) {
	page := &notionapi.Page{
		ID:         "25a8fe3b-cf0c-4e0f-9d0b-b812fd0fb12c",
		Properties: notionapi.Properties{},
	}

	inv := invoiceFromPage(page)

	// half-filled rows degrade to zero values, never errors
	assert.Empty(t, inv.Number)
	assert.Empty(t, inv.Client)
	assert.Zero(t, inv.Total)
	assert.Nil(t, inv.IssueDate)
	assert.Nil(t, inv.DueDate)
}
