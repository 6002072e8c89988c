package telemetry

import (
	"context"
	"math/rand"
	"strings"
	"sync"

	domainerrors "resolution-desk.backend/internal/domain/errors"
)

// Provider answers delivery-side questions the agent asks while investigating a complaint.
type Provider interface {
	TrackDelivery(ctx context.Context, orderID string) (string, error)
	AnalyzeRoute(ctx context.Context, orderID string) (string, error)
	WeatherImpact(ctx context.Context, location string) (string, error)
	ContactDriver(ctx context.Context, driverID, message string) (string, error)
	ContactMerchant(ctx context.Context, merchantID, message string) (string, error)
}

var deliveryStatuses = []string{
	"Order confirmed → Merchant preparing (8 mins) → Driver assigned → En route to pickup",
	"Picked up → In transit → 3.2km from destination → ETA 12 minutes",
	"Delivered → Customer notified → Awaiting confirmation",
	"Delivery attempted → Customer unavailable → Driver waiting at location",
}

var weatherConditions = []string{
	"Clear weather, no impact on delivery times",
	"Light rain, +5-10 min expected delivery delays",
	"Heavy rain, +15-20 min delays, safety protocol activated",
	"Extreme weather alert, deliveries suspended for safety",
}

var driverReplies = []string{
	"Driver responded: 'Customer not at delivery address, trying alternative contact'",
	"Driver confirmed: 'Order delivered to specified location, customer received items'",
	"Driver explained: 'Traffic jam caused delay, sent customer notification'",
	"Driver reported: 'Merchant had to remake order due to quality issue'",
}

var merchantReplies = []string{
	"Merchant confirmed: 'Order prepared correctly, packaged according to standards'",
	"Merchant admitted: 'Kitchen error occurred, willing to remake order at no charge'",
	"Merchant explained: 'Delay due to ingredient shortage, offered substitute items'",
	"Merchant investigating: 'Reviewing kitchen procedures, will provide feedback within 2 hours'",
}

const routeAnalysis = "Route Efficiency: 94% optimal (standard city traffic); " +
	"Speed: average 28 km/h (within normal range); " +
	"Stops: merchant pickup (2 min) then direct route to customer; " +
	"Anomalies: none detected; " +
	"Verification: GPS coordinates match reported delivery address"

// SimulatedProvider picks canned telemetry from a seeded source.
type SimulatedProvider struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewSimulatedProvider creates a provider whose answers are reproducible for a given seed
func NewSimulatedProvider(seed int64) *SimulatedProvider {
	return &SimulatedProvider{rnd: rand.New(rand.NewSource(seed))}
}

func (p *SimulatedProvider) TrackDelivery(ctx context.Context, orderID string) (string, error) {
	if err := requireArg(orderID); err != nil {
		return "", err
	}
	return "Delivery Status: " + p.pick(deliveryStatuses), nil
}

func (p *SimulatedProvider) AnalyzeRoute(ctx context.Context, orderID string) (string, error) {
	if err := requireArg(orderID); err != nil {
		return "", err
	}
	return "GPS Analysis: " + routeAnalysis, nil
}

func (p *SimulatedProvider) WeatherImpact(ctx context.Context, location string) (string, error) {
	if err := requireArg(location); err != nil {
		return "", err
	}
	return "Weather Impact: " + p.pick(weatherConditions), nil
}

func (p *SimulatedProvider) ContactDriver(ctx context.Context, driverID, message string) (string, error) {
	if err := requireArg(driverID); err != nil {
		return "", err
	}
	return "Driver Communication: " + p.pick(driverReplies), nil
}

func (p *SimulatedProvider) ContactMerchant(ctx context.Context, merchantID, message string) (string, error) {
	if err := requireArg(merchantID); err != nil {
		return "", err
	}
	return "Merchant Response: " + p.pick(merchantReplies), nil
}

func (p *SimulatedProvider) pick(options []string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return options[p.rnd.Intn(len(options))]
}

// StaticProvider returns fixed answers.
type StaticProvider struct {
	Delivery string
	Route    string
	Weather  string
	Driver   string
	Merchant string
}

// NewStaticProvider returns a provider answering with the first canned value of each kind
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{
		Delivery: "Delivery Status: " + deliveryStatuses[2],
		Route:    "GPS Analysis: " + routeAnalysis,
		Weather:  "Weather Impact: " + weatherConditions[0],
		Driver:   "Driver Communication: " + driverReplies[1],
		Merchant: "Merchant Response: " + merchantReplies[0],
	}
}

func (p *StaticProvider) TrackDelivery(ctx context.Context, orderID string) (string, error) {
	if err := requireArg(orderID); err != nil {
		return "", err
	}
	return p.Delivery, nil
}

func (p *StaticProvider) AnalyzeRoute(ctx context.Context, orderID string) (string, error) {
	if err := requireArg(orderID); err != nil {
		return "", err
	}
	return p.Route, nil
}

func (p *StaticProvider) WeatherImpact(ctx context.Context, location string) (string, error) {
	if err := requireArg(location); err != nil {
		return "", err
	}
	return p.Weather, nil
}

func (p *StaticProvider) ContactDriver(ctx context.Context, driverID, message string) (string, error) {
	if err := requireArg(driverID); err != nil {
		return "", err
	}
	return p.Driver, nil
}

func (p *StaticProvider) ContactMerchant(ctx context.Context, merchantID, message string) (string, error) {
	if err := requireArg(merchantID); err != nil {
		return "", err
	}
	return p.Merchant, nil
}

// New builds the provider named by mode; anything but "static" is simulated
func New(mode string, seed int64) Provider {
	if strings.EqualFold(mode, "static") {
		return NewStaticProvider()
	}
	return NewSimulatedProvider(seed)
}

func requireArg(v string) error {
	if strings.TrimSpace(v) == "" {
		return domainerrors.ErrMalformedInput
	}
	return nil
}
