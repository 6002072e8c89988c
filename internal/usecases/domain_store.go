package usecases

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"resolution-desk.backend/internal/config"
	"resolution-desk.backend/internal/domain/entities"
	domainerrors "resolution-desk.backend/internal/domain/errors"
	"resolution-desk.backend/internal/domain/repositories"
	"resolution-desk.backend/internal/infrastructure/metrics"
	"resolution-desk.backend/pkg/logger"
	"resolution-desk.backend/pkg/utils"
)

const (
	prefixRefund     = "REF"
	prefixComplaint  = "COMP"
	prefixOrder      = "ORD"
	prefixVoucher    = "VCH"
	prefixEscalation = "ESC"

	refundReferencePrefix = "REFUND_REF_"
	logTimestampLayout    = "2006-01-02 15:04:05"
)

// StoreRepositories groups the repositories the domain store writes through
type StoreRepositories struct {
	Customers    repositories.CustomerRepository
	Merchants    repositories.MerchantRepository
	Drivers      repositories.DriverRepository
	Orders       repositories.OrderRepository
	Transactions repositories.TransactionRepository
	Vouchers     repositories.VoucherRepository
	Complaints   repositories.ComplaintRepository
	Escalations  repositories.EscalationRepository
	Sequences    repositories.SequenceRepository
}

// DomainStore owns every record the resolution engine reads or writes.
// Mutations are serialized by one lock and each runs in its own transaction.
type DomainStore struct {
	mu       sync.Mutex
	repos    StoreRepositories
	uow      repositories.UnitOfWork
	defaults config.ResolutionConfig
	now      func() time.Time
}

// NewDomainStore creates a new domain store
func NewDomainStore(repos StoreRepositories, uow repositories.UnitOfWork, defaults config.ResolutionConfig) *DomainStore {
	return &DomainStore{
		repos:    repos,
		uow:      uow,
		defaults: defaults,
		now:      time.Now,
	}
}

// SetClock replaces the time source used for timestamps
func (s *DomainStore) SetClock(now func() time.Time) {
	s.now = now
}

// Defaults returns the configured fallback ids and amounts
func (s *DomainStore) Defaults() config.ResolutionConfig {
	return s.defaults
}

func (s *DomainStore) GetCustomer(ctx context.Context, id string) (*entities.Customer, error) {
	return s.repos.Customers.GetByID(ctx, id)
}

func (s *DomainStore) GetMerchant(ctx context.Context, id string) (*entities.Merchant, error) {
	return s.repos.Merchants.GetByID(ctx, id)
}

func (s *DomainStore) GetDriver(ctx context.Context, id string) (*entities.Driver, error) {
	return s.repos.Drivers.GetByID(ctx, id)
}

func (s *DomainStore) GetOrder(ctx context.Context, id string) (*entities.Order, error) {
	return s.repos.Orders.GetByID(ctx, id)
}

func (s *DomainStore) GetTransaction(ctx context.Context, id string) (*entities.Transaction, error) {
	return s.repos.Transactions.GetByID(ctx, id)
}

func (s *DomainStore) GetComplaint(ctx context.Context, id string) (*entities.Complaint, error) {
	return s.repos.Complaints.GetByID(ctx, id)
}

func (s *DomainStore) GetEscalation(ctx context.Context, id string) (*entities.Escalation, error) {
	return s.repos.Escalations.GetByID(ctx, id)
}

func (s *DomainStore) ListOrdersByCustomer(ctx context.Context, customerID string) ([]*entities.Order, error) {
	return s.repos.Orders.ListByCustomer(ctx, customerID)
}

// ListOrders returns the orders matching keep; a nil keep returns all
func (s *DomainStore) ListOrders(ctx context.Context, keep func(*entities.Order) bool) ([]*entities.Order, error) {
	all, err := s.repos.Orders.List(ctx)
	if err != nil {
		return nil, err
	}
	if keep == nil {
		return all, nil
	}
	out := make([]*entities.Order, 0, len(all))
	for _, o := range all {
		if keep(o) {
			out = append(out, o)
		}
	}
	return out, nil
}

func (s *DomainStore) ListTransactionsByCustomer(ctx context.Context, customerID string, pagination utils.PaginationParams) ([]*entities.Transaction, utils.PaginationMeta, error) {
	items, total, err := s.repos.Transactions.ListByCustomer(ctx, customerID, pagination.Limit, pagination.CalculateOffset())
	if err != nil {
		return nil, utils.PaginationMeta{}, err
	}
	return items, utils.CalculateMeta(int64(total), pagination.Page, pagination.Limit), nil
}

func (s *DomainStore) ListComplaintsByCustomer(ctx context.Context, customerID string) ([]*entities.Complaint, error) {
	return s.repos.Complaints.ListByCustomer(ctx, customerID)
}

func (s *DomainStore) ListVouchersByCustomer(ctx context.Context, customerID string) ([]*entities.Voucher, error) {
	return s.repos.Vouchers.ListByCustomer(ctx, customerID)
}

// mutate runs fn under the store lock inside one transaction
func (s *DomainStore) mutate(ctx context.Context, fn func(ctx context.Context) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uow.Do(ctx, fn)
}

func (s *DomainStore) nextID(ctx context.Context, prefix string) (string, error) {
	n, err := s.repos.Sequences.Next(ctx, prefix)
	if err != nil {
		return "", fmt.Errorf("next %s id: %w", prefix, err)
	}
	return utils.SequenceID(prefix, n), nil
}

// CreateOrder records a delivered order built from a free-text description.
// A nil or non-positive amount falls back to the configured default.
func (s *DomainStore) CreateOrder(ctx context.Context, description string, amount *float64) (*entities.Order, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("order description: %w", domainerrors.ErrMalformedInput)
	}
	total := s.defaults.DefaultOrderAmount
	if amount != nil && *amount > 0 && !math.IsInf(*amount, 0) {
		total = *amount
	}

	var order *entities.Order
	err := s.mutate(ctx, func(ctx context.Context) error {
		id, err := s.nextID(ctx, prefixOrder)
		if err != nil {
			return err
		}

		address, payment := "", "wallet"
		customer, err := s.repos.Customers.GetByID(ctx, s.defaults.DefaultCustomerID)
		switch {
		case err == nil:
			address = customer.Address
			if customer.PreferredPayment != "" {
				payment = customer.PreferredPayment
			}
		case !errors.Is(err, domainerrors.ErrNotFound):
			return err
		}

		order = &entities.Order{
			ID:              id,
			CustomerID:      s.defaults.DefaultCustomerID,
			MerchantID:      s.defaults.DefaultMerchantID,
			DriverID:        s.defaults.DefaultDriverID,
			Description:     description,
			Items:           []entities.OrderItem{{Name: description, Quantity: 1, UnitPrice: total}},
			OrderedAt:       s.now(),
			Status:          entities.OrderStatusDelivered,
			PaymentMethod:   payment,
			DeliveryAddress: address,
			TotalAmount:     total,
			DeliveryCharge:  s.defaults.DeliveryCharge,
			FinalAmount:     total + s.defaults.DeliveryCharge,
		}
		return s.repos.Orders.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "Order created",
		zap.String("order_id", order.ID),
		zap.String("customer_id", order.CustomerID),
		zap.Float64("total", order.TotalAmount),
	)
	return order, nil
}

// ProcessRefund credits the customer's wallet and records the transaction.
// Either both happen or neither does.
func (s *DomainStore) ProcessRefund(ctx context.Context, customerID string, amount float64, reason string) (*entities.RefundReceipt, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, fmt.Errorf("refund amount %v: %w", amount, domainerrors.ErrMalformedInput)
	}

	var receipt *entities.RefundReceipt
	err := s.mutate(ctx, func(ctx context.Context) error {
		if _, err := s.repos.Customers.GetByID(ctx, customerID); err != nil {
			return fmt.Errorf("customer %s: %w", customerID, err)
		}
		id, err := s.nextID(ctx, prefixRefund)
		if err != nil {
			return err
		}
		txn := &entities.Transaction{
			ID:         id,
			CustomerID: customerID,
			Amount:     amount,
			Kind:       entities.TransactionKindRefund,
			Reason:     reason,
			Status:     entities.TransactionStatusProcessed,
			Reference:  utils.ReferenceCode(refundReferencePrefix),
			CreatedAt:  s.now(),
		}
		if err := s.repos.Transactions.Create(ctx, txn); err != nil {
			return err
		}
		balance, err := s.repos.Customers.CreditWallet(ctx, customerID, amount)
		if err != nil {
			return err
		}
		receipt = &entities.RefundReceipt{Transaction: txn, WalletBalance: balance}
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.RefundAmountTotal.Add(amount)
	logger.Info(ctx, "Refund processed",
		zap.String("transaction_id", receipt.Transaction.ID),
		zap.String("customer_id", customerID),
		zap.Float64("refund", amount),
		zap.Float64("wallet_balance", receipt.WalletBalance),
	)
	return receipt, nil
}

// LogComplaint records a complaint, appends it to the customer's history and
// links it to the order when those records exist.
func (s *DomainStore) LogComplaint(ctx context.Context, customerID, orderID, issueType, details string) (*entities.Complaint, error) {
	var complaint *entities.Complaint
	err := s.mutate(ctx, func(ctx context.Context) error {
		id, err := s.nextID(ctx, prefixComplaint)
		if err != nil {
			return err
		}
		complaint = &entities.Complaint{
			ID:         id,
			CustomerID: customerID,
			OrderID:    orderID,
			IssueType:  issueType,
			Details:    details,
			Status:     entities.ComplaintStatusOpen,
			CreatedAt:  s.now(),
		}
		if err := s.repos.Complaints.Create(ctx, complaint); err != nil {
			return err
		}
		if err := s.repos.Customers.AppendComplaint(ctx, customerID, id); err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
			return err
		}
		if orderID != "" {
			if err := s.repos.Orders.LinkComplaint(ctx, orderID, id); err != nil && !errors.Is(err, domainerrors.ErrNotFound) {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "Complaint logged",
		zap.String("complaint_id", complaint.ID),
		zap.String("customer_id", customerID),
		zap.String("order_id", orderID),
		zap.String("issue_type", issueType),
	)
	return complaint, nil
}

// LogMerchantFeedback appends a timestamped entry to the merchant's feedback log.
// It reports false, without mutating anything, when the merchant is unknown.
func (s *DomainStore) LogMerchantFeedback(ctx context.Context, merchantID, issue, severity string) (bool, error) {
	if strings.TrimSpace(severity) == "" {
		severity = entities.UrgencyMedium
	}
	entry := fmt.Sprintf("%s: %s - %s", s.now().Format(logTimestampLayout), upper(severity), issue)

	err := s.mutate(ctx, func(ctx context.Context) error {
		return s.repos.Merchants.AppendFeedback(ctx, merchantID, entry)
	})
	if errors.Is(err, domainerrors.ErrNotFound) {
		logger.Warn(ctx, "Merchant feedback skipped, unknown merchant", zap.String("merchant_id", merchantID))
		return false, nil
	}
	if err != nil {
		return false, err
	}

	logger.Info(ctx, "Merchant feedback logged", zap.String("merchant_id", merchantID), zap.String("severity", severity))
	return true, nil
}

// ExonerateDriver appends a timestamped clearance to the driver's log.
// It reports false, without mutating anything, when the driver is unknown.
func (s *DomainStore) ExonerateDriver(ctx context.Context, driverID, reason string) (bool, error) {
	entry := fmt.Sprintf("%s: EXONERATED - %s", s.now().Format(logTimestampLayout), reason)

	err := s.mutate(ctx, func(ctx context.Context) error {
		return s.repos.Drivers.AppendExoneration(ctx, driverID, entry)
	})
	if errors.Is(err, domainerrors.ErrNotFound) {
		logger.Warn(ctx, "Exoneration skipped, unknown driver", zap.String("driver_id", driverID))
		return false, nil
	}
	if err != nil {
		return false, err
	}

	logger.Info(ctx, "Driver exonerated", zap.String("driver_id", driverID))
	return true, nil
}

// IssueVoucher grants non-cash credit; the wallet is not touched.
func (s *DomainStore) IssueVoucher(ctx context.Context, customerID string, amount float64, voucherType, reason string) (*entities.Voucher, error) {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return nil, fmt.Errorf("voucher amount %v: %w", amount, domainerrors.ErrMalformedInput)
	}

	var voucher *entities.Voucher
	err := s.mutate(ctx, func(ctx context.Context) error {
		if _, err := s.repos.Customers.GetByID(ctx, customerID); err != nil {
			return fmt.Errorf("customer %s: %w", customerID, err)
		}
		id, err := s.nextID(ctx, prefixVoucher)
		if err != nil {
			return err
		}
		now := s.now()
		voucher = &entities.Voucher{
			ID:         id,
			CustomerID: customerID,
			Amount:     amount,
			Type:       voucherType,
			Reason:     reason,
			ExpiresAt:  now.Add(entities.VoucherValidity),
			CreatedAt:  now,
		}
		return s.repos.Vouchers.Create(ctx, voucher)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "Voucher issued",
		zap.String("voucher_id", voucher.ID),
		zap.String("customer_id", customerID),
		zap.Float64("amount", amount),
		zap.String("type", voucherType),
	)
	return voucher, nil
}

// CreateEscalation opens a hand-off to a human team.
func (s *DomainStore) CreateEscalation(ctx context.Context, kind entities.EscalationKind, reason, urgency, summary string, parties []string) (*entities.Escalation, error) {
	urgency = strings.ToLower(strings.TrimSpace(urgency))
	switch urgency {
	case entities.UrgencyHigh, entities.UrgencyMedium, entities.UrgencyLow:
	default:
		return nil, fmt.Errorf("urgency %q: %w", urgency, domainerrors.ErrMalformedInput)
	}

	var escalation *entities.Escalation
	err := s.mutate(ctx, func(ctx context.Context) error {
		id, err := s.nextID(ctx, prefixEscalation)
		if err != nil {
			return err
		}
		escalation = &entities.Escalation{
			ID:               id,
			Kind:             kind,
			Reason:           reason,
			Urgency:          urgency,
			Summary:          summary,
			Parties:          parties,
			ExpectedResponse: entities.ExpectedResponseFor(urgency),
			CreatedAt:        s.now(),
		}
		return s.repos.Escalations.Create(ctx, escalation)
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "Escalation created",
		zap.String("escalation_id", escalation.ID),
		zap.String("kind", string(kind)),
		zap.String("urgency", urgency),
	)
	return escalation, nil
}

// ResolveComplaint closes a complaint with a resolution note
func (s *DomainStore) ResolveComplaint(ctx context.Context, complaintID, resolution string) (*entities.Complaint, error) {
	var complaint *entities.Complaint
	err := s.mutate(ctx, func(ctx context.Context) error {
		if err := s.repos.Complaints.MarkResolved(ctx, complaintID, resolution, s.now()); err != nil {
			return fmt.Errorf("complaint %s: %w", complaintID, err)
		}
		var err error
		complaint, err = s.repos.Complaints.GetByID(ctx, complaintID)
		return err
	})
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "Complaint resolved", zap.String("complaint_id", complaintID))
	return complaint, nil
}
