package usecases

import (
	"math"
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"resolution-desk.backend/internal/domain/entities"
)

// Narrator renders the customer-facing text relayed by the agent.
type Narrator struct {
	printer *message.Printer
	symbol  string
}

// NewNarrator creates a narrator formatting amounts with the given currency symbol
func NewNarrator(currencySymbol string) *Narrator {
	if currencySymbol == "" {
		currencySymbol = "₹"
	}
	return &Narrator{
		printer: message.NewPrinter(language.English),
		symbol:  currencySymbol,
	}
}

// Money formats an amount with grouping; whole amounts drop the decimals.
func (n *Narrator) Money(amount float64) string {
	if amount == math.Trunc(amount) {
		return n.symbol + n.printer.Sprintf("%.0f", amount)
	}
	return n.symbol + n.printer.Sprintf("%.2f", amount)
}

func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func title(s string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(s, "_", " "))
}

type lines struct {
	b strings.Builder
}

func (l *lines) head(s string) *lines {
	l.b.WriteString(s)
	l.b.WriteString("\n")
	return l
}

func (l *lines) item(p *message.Printer, format string, args ...interface{}) *lines {
	l.b.WriteString("• ")
	l.b.WriteString(p.Sprintf(format, args...))
	l.b.WriteString("\n")
	return l
}

func (l *lines) String() string {
	return strings.TrimRight(l.b.String(), "\n")
}

func (n *Narrator) EvidencePrompt(e entities.EvidenceResult) string {
	l := &lines{}
	l.head(e.Prompt)
	for _, f := range e.MissingFields {
		l.item(n.printer, "%s", f)
	}
	return l.String()
}

func (n *Narrator) Situation(s entities.Situation, score entities.SeverityScore) string {
	l := &lines{}
	l.head("SITUATION ANALYSIS")
	l.item(n.printer, "Severity: %s (score %d)", s.Tier, score.Total)
	l.item(n.printer, "Category: %s", s.Category)
	l.item(n.printer, "Impact: %s", s.Impact)
	l.item(n.printer, "Recommended Action: %s", s.RecommendedAction)
	l.item(n.printer, "Responsible Party: %s", s.Responsible)
	return l.String()
}

func (n *Narrator) CustomerProfile(c *entities.Customer) string {
	l := &lines{}
	l.head("Customer Profile Analysis:")
	l.item(n.printer, "Name: %s (ID: %s)", c.Name, c.ID)
	l.item(n.printer, "Account Status: %s", upper(string(c.AccountStatus)))
	l.item(n.printer, "Customer Rating: %.1f/5.0", c.Rating)
	l.item(n.printer, "Total Orders: %d", c.TotalOrders)
	l.item(n.printer, "Complaint History: %d complaints", c.ComplaintCount())
	l.item(n.printer, "Wallet Balance: %s", n.Money(c.WalletBalance))
	l.item(n.printer, "Member Since: %s", c.JoinedDate.Format("2006-01-02"))
	l.item(n.printer, "Risk Assessment: %s", c.RiskLevel())
	l.item(n.printer, "Trustworthiness: %s", c.Trustworthiness())
	return l.String()
}

func (n *Narrator) DriverProfile(d *entities.Driver) string {
	incidents := "Clean record"
	if len(d.Incidents) > 0 {
		incidents = strings.Join(d.Incidents, "; ")
	}
	l := &lines{}
	l.head("Driver Profile Analysis:")
	l.item(n.printer, "Name: %s (ID: %s)", d.Name, d.ID)
	l.item(n.printer, "Vehicle: %s", d.VehicleType)
	l.item(n.printer, "Driver Rating: %.1f/5.0", d.Rating)
	l.item(n.printer, "Total Deliveries: %d", d.TotalDeliveries)
	l.item(n.printer, "Status: %s", upper(string(d.Status)))
	l.item(n.printer, "Avg Delivery Time: %d minutes", d.AvgDeliveryMinutes)
	l.item(n.printer, "Cancellation Rate: %.1f%%", d.CancellationRate*100)
	l.item(n.printer, "Incident History: %s", incidents)
	l.item(n.printer, "Exonerations on record: %d", len(d.ExonerationLog))
	return l.String()
}

func (n *Narrator) MerchantProfile(m *entities.Merchant) string {
	issues := "None recorded"
	if len(m.QualityIssues) > 0 {
		issues = strings.Join(m.QualityIssues, ", ")
	}
	l := &lines{}
	l.head("MERCHANT QUALITY ASSESSMENT - " + m.Name)
	l.item(n.printer, "Overall Rating: %.1f/5.0", m.Rating)
	l.item(n.printer, "Total Orders Processed: %d", m.TotalOrders)
	l.item(n.printer, "Complaint Rate: %.1f%%", m.ComplaintRate*100)
	l.item(n.printer, "Average Preparation Time: %d minutes", m.AvgPreparationMinutes)
	l.item(n.printer, "Status: %s", upper(string(m.Status)))
	l.item(n.printer, "Recent Quality Issues: %s", issues)
	l.item(n.printer, "Feedback Entries: %d", len(m.FeedbackLog))
	l.item(n.printer, "Last Quality Inspection: %s", m.LastInspection.Format("2006-01-02"))
	l.head("MENU AVAILABILITY:")
	for _, key := range sortedMenuKeys(m.Menu) {
		item := m.Menu[key]
		status := "✓ Available"
		if !item.Available {
			status = "✗ Out of Stock"
		}
		l.item(n.printer, "%s: %s - %s", title(key), n.Money(item.Price), status)
	}
	return l.String()
}

func (n *Narrator) OrderReport(o *entities.Order) string {
	complaint := "none"
	if o.ComplaintID.Valid {
		complaint = o.ComplaintID.String
	}
	l := &lines{}
	l.head("ORDER DETAILS - " + o.ID)
	l.item(n.printer, "Order Amount: %s + %s delivery = %s", n.Money(o.TotalAmount), n.Money(o.DeliveryCharge), n.Money(o.FinalAmount))
	l.item(n.printer, "Order Time: %s", o.OrderedAt.Format("2006-01-02 15:04:05"))
	l.item(n.printer, "Status: %s", o.Status)
	l.item(n.printer, "Payment Method: %s", o.PaymentMethod)
	l.item(n.printer, "Customer: %s, Merchant: %s, Driver: %s", o.CustomerID, o.MerchantID, o.DriverID)
	l.item(n.printer, "Linked Complaint: %s", complaint)
	l.head("ITEMS ORDERED:")
	for _, it := range o.Items {
		l.item(n.printer, "%s x%d @ %s each", it.Name, it.Quantity, n.Money(it.UnitPrice))
	}
	return l.String()
}

func (n *Narrator) Refund(r *entities.RefundReceipt) string {
	t := r.Transaction
	l := &lines{}
	l.head("REFUND PROCESSED SUCCESSFULLY")
	l.item(n.printer, "Transaction ID: %s", t.ID)
	l.item(n.printer, "Customer ID: %s", t.CustomerID)
	l.item(n.printer, "Refund Amount: %s", n.Money(t.Amount))
	l.item(n.printer, "Reason: %s", t.Reason)
	l.item(n.printer, "Reference: %s", t.Reference)
	l.item(n.printer, "Status: %s", upper(string(t.Status)))
	l.item(n.printer, "Processed At: %s", t.CreatedAt.Format("2006-01-02 15:04:05"))
	l.item(n.printer, "New Wallet Balance: %s", n.Money(r.WalletBalance))
	return l.String()
}

func (n *Narrator) MerchantFeedback(merchantID, issue, severity string) string {
	l := &lines{}
	l.head("MERCHANT FEEDBACK LOGGED")
	l.item(n.printer, "Merchant ID: %s", merchantID)
	l.item(n.printer, "Issue: %s", issue)
	l.item(n.printer, "Severity: %s", upper(severity))
	l.item(n.printer, "Status: Quality team will review within 24 hours")
	l.item(n.printer, "Action: Merchant will be contacted for improvement measures")
	return l.String()
}

func (n *Narrator) Exoneration(d *entities.Driver, reason string) string {
	l := &lines{}
	l.head("DRIVER EXONERATION COMPLETED")
	l.item(n.printer, "Driver: %s (ID: %s)", d.Name, d.ID)
	l.item(n.printer, "Reason: %s", reason)
	l.item(n.printer, "Status: Driver cleared of all fault for this incident")
	l.item(n.printer, "Impact: No negative impact on driver's performance record")
	l.item(n.printer, "Driver Rating Maintained: %.1f/5.0", d.Rating)
	return l.String()
}

func (n *Narrator) Incident(c *entities.Complaint, priority string) string {
	l := &lines{}
	l.head("INCIDENT REPORT CREATED")
	l.item(n.printer, "Report ID: %s", c.ID)
	l.item(n.printer, "Customer ID: %s", c.CustomerID)
	l.item(n.printer, "Order ID: %s", c.OrderID)
	l.item(n.printer, "Issue Type: %s", c.IssueType)
	l.item(n.printer, "Description: %s", c.Details)
	l.item(n.printer, "Status: Under Investigation")
	l.item(n.printer, "Priority: %s", priority)
	l.item(n.printer, "Expected Resolution: 24-48 hours")
	return l.String()
}

func (n *Narrator) Eligibility(e entities.Eligibility) string {
	l := &lines{}
	l.head("REFUND ELIGIBILITY ASSESSMENT")
	l.item(n.printer, "Customer Trust Score: %.1f/5.0", e.TrustScore)
	l.item(n.printer, "Order Amount: %s", n.Money(e.OrderTotal))
	l.item(n.printer, "Requested Refund: %s", n.Money(e.ClaimAmount))
	l.item(n.printer, "Maximum Eligible: %s", n.Money(math.Round(e.MaxEligible)))
	l.item(n.printer, "Eligibility Status: %s", e.Status)
	l.item(n.printer, "Recommended Amount: %s", n.Money(math.Round(e.RecommendedAmount)))
	for _, note := range e.Notes {
		l.item(n.printer, "%s", note)
	}
	return l.String()
}

func (n *Narrator) Order(o *entities.Order) string {
	return n.printer.Sprintf("Order %s created for %s (%s + %s delivery = %s), status %s.",
		o.ID, o.Description, n.Money(o.TotalAmount), n.Money(o.DeliveryCharge), n.Money(o.FinalAmount), o.Status)
}

func (n *Narrator) Voucher(v *entities.Voucher) string {
	return n.printer.Sprintf("Issued %s voucher %s worth %s to customer %s. Valid until %s, applicable to future orders.",
		v.Type, v.ID, n.Money(v.Amount), v.CustomerID, v.ExpiresAt.Format("2006-01-02"))
}

func (n *Narrator) Escalation(e *entities.Escalation) string {
	return n.printer.Sprintf("Case escalated (%s, ref %s). Priority: %s. Reason: %s. Expected response time: %s.",
		e.Kind, e.ID, upper(e.Urgency), e.Reason, e.ExpectedResponse)
}

func (n *Narrator) ComplaintResolved(c *entities.Complaint) string {
	return n.printer.Sprintf("Complaint %s marked %s: %s", c.ID, c.Status, c.Resolution.String)
}

func (n *Narrator) Substitution(m *entities.Merchant, originalItem string) string {
	l := &lines{}
	l.head("MERCHANT SUBSTITUTION POLICY - " + m.Name)
	l.item(n.printer, "Original Item Requested: %s", originalItem)
	l.item(n.printer, "Substitution Policy: Items of equal or greater value may be substituted with customer consent")
	l.item(n.printer, "Available Alternatives:")
	for _, key := range sortedMenuKeys(m.Menu) {
		item := m.Menu[key]
		if item.Available && key != originalItem {
			l.b.WriteString(n.printer.Sprintf("  - %s: %s\n", title(key), n.Money(item.Price)))
		}
	}
	l.item(n.printer, "Merchant Contact: %s", m.Phone)
	return l.String()
}

// Resolution renders the final summary of a resolved complaint.
func (n *Narrator) Resolution(o *entities.ResolutionOutcome) string {
	p := o.Plan
	l := &lines{}
	l.head("RESOLUTION COMPLETE")
	l.item(n.printer, "Issue: %s (%s severity, score %d)", o.Situation.Category, o.Situation.Tier, o.Score.Total)
	l.item(n.printer, "Compensation Tier: %s (%s)", p.Tier, p.Policy)
	l.item(n.printer, "%s", p.SolutionOffer)
	if p.RefundAmount > 0 {
		l.item(n.printer, "Refund: %s credited to wallet (transaction %s)", n.Money(p.RefundAmount), o.TransactionID)
	} else {
		l.item(n.printer, "Refund: none at this stage")
	}
	if p.VoucherAmount > 0 {
		l.item(n.printer, "Voucher: %s %s (voucher %s)", n.Money(p.VoucherAmount), p.VoucherType, o.VoucherID)
	}
	l.item(n.printer, "Complaint Reference: %s for order %s", o.ComplaintID, o.OrderID)
	if o.Eligibility != nil {
		l.item(n.printer, "Eligibility: %s (max %s)", o.Eligibility.Status, n.Money(o.Eligibility.MaxEligible))
	}
	l.head("NEXT STEPS:")
	for _, step := range p.NextSteps {
		l.item(n.printer, "%s", step)
	}
	return l.String()
}

func sortedMenuKeys(menu map[string]entities.MenuItem) []string {
	keys := make([]string, 0, len(menu))
	for k := range menu {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
