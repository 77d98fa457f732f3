package invoice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jomei/notionapi"
)

// Notion property names in the invoice and line-item databases.
const (
	propNumber      = "Number"
	propClient      = "Client"
	propStatus      = "Status"
	propIssueDate   = "Issue Date"
	propDueDate     = "Due Date"
	propTotal       = "Total"
	propCurrency    = "Currency"
	propDescription = "Description"
	propQuantity    = "Quantity"
	propUnitPrice   = "Unit Price"
	propAmount      = "Amount"
	propInvoiceRel  = "Invoice"
)

// NotionRepository reads invoices from two Notion databases: one for
// invoices and one for their line items, related by the Invoice
// property.
type NotionRepository struct {
	client     *notionapi.Client
	invoicesDB notionapi.DatabaseID
	itemsDB    notionapi.DatabaseID
	pageSize   int
}

func NewNotionRepository(apiKey, invoicesDB, itemsDB string) *NotionRepository {
	return &NotionRepository{
		client:     notionapi.NewClient(notionapi.Token(apiKey)),
		invoicesDB: notionapi.DatabaseID(invoicesDB),
		itemsDB:    notionapi.DatabaseID(itemsDB),
		pageSize:   100,
	}
}

// List returns every invoice, newest issue date first. Line items are
// not loaded here; the list page does not show them.
func (r *NotionRepository) List(ctx context.Context) ([]Invoice, error) {
	var invoices []Invoice

	req := &notionapi.DatabaseQueryRequest{
		Sorts: []notionapi.SortObject{
			{Property: propIssueDate, Direction: notionapi.SortOrderDESC},
		},
		PageSize: r.pageSize,
	}

	for {
		resp, err := r.client.Database.Query(ctx, r.invoicesDB, req)
		if err != nil {
			return nil, fmt.Errorf("invoice: query invoices: %w", err)
		}

		for i := range resp.Results {
			invoices = append(invoices, invoiceFromPage(&resp.Results[i]))
		}

		if !resp.HasMore {
			return invoices, nil
		}
		req.StartCursor = resp.NextCursor
	}
}

// Get returns one invoice with its line items. Unknown IDs map to
// ErrNotFound.
func (r *NotionRepository) Get(ctx context.Context, id string) (*Invoice, error) {
	page, err := r.client.Page.Get(ctx, notionapi.PageID(id))
	if err != nil {
		var apiErr *notionapi.Error
		if errors.As(err, &apiErr) && apiErr.Status == 404 {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("invoice: get page: %w", err)
	}

	inv := invoiceFromPage(page)

	items, err := r.listItems(ctx, string(page.ID))
	if err != nil {
		return nil, err
	}
	inv.Items = items

	return &inv, nil
}

func (r *NotionRepository) listItems(ctx context.Context, invoicePageID string) ([]LineItem, error) {
	resp, err := r.client.Database.Query(ctx, r.itemsDB, &notionapi.DatabaseQueryRequest{
		Filter: &notionapi.PropertyFilter{
			Property: propInvoiceRel,
			Relation: &notionapi.RelationFilterCondition{
				Contains: invoicePageID,
			},
		},
		PageSize: r.pageSize,
	})
	if err != nil {
		return nil, fmt.Errorf("invoice: query items: %w", err)
	}

	items := make([]LineItem, 0, len(resp.Results))
	for i := range resp.Results {
		page := &resp.Results[i]
		items = append(items, LineItem{
			ID:          NormalizeID(string(page.ID)),
			Description: titleText(page, propDescription),
			Quantity:    numberValue(page, propQuantity),
			UnitPrice:   numberValue(page, propUnitPrice),
			Amount:      numberValue(page, propAmount),
		})
	}

	return items, nil
}

func invoiceFromPage(page *notionapi.Page) Invoice {
	return Invoice{
		ID:        NormalizeID(string(page.ID)),
		Number:    titleText(page, propNumber),
		Client:    richText(page, propClient),
		Status:    selectName(page, propStatus),
		IssueDate: dateValue(page, propIssueDate),
		DueDate:   dateValue(page, propDueDate),
		Total:     numberValue(page, propTotal),
		Currency:  selectName(page, propCurrency),
	}
}

// Property extraction below tolerates missing or retyped properties;
// a half-filled Notion row yields zero values, not errors.

func titleText(page *notionapi.Page, name string) string {
	if p, ok := page.Properties[name].(*notionapi.TitleProperty); ok {
		return plainText(p.Title)
	}
	return ""
}

func richText(page *notionapi.Page, name string) string {
	if p, ok := page.Properties[name].(*notionapi.RichTextProperty); ok {
		return plainText(p.RichText)
	}
	return ""
}

func numberValue(page *notionapi.Page, name string) float64 {
	if p, ok := page.Properties[name].(*notionapi.NumberProperty); ok {
		return p.Number
	}
	return 0
}

func selectName(page *notionapi.Page, name string) string {
	if p, ok := page.Properties[name].(*notionapi.SelectProperty); ok {
		return p.Select.Name
	}
	return ""
}

func dateValue(page *notionapi.Page, name string) *time.Time {
	p, ok := page.Properties[name].(*notionapi.DateProperty)
	if !ok || p.Date == nil || p.Date.Start == nil {
		return nil
	}
	t := time.Time(*p.Date.Start)
	return &t
}

func plainText(rts []notionapi.RichText) string {
	out := ""
	for _, rt := range rts {
		out += rt.PlainText
	}
	return out
}
