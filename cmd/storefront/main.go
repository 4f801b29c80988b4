// storefront runs the mini app against a simulated chat host.  It is a
// development harness: an interactive prompt stands in for taps, and the
// simulated host's primary-action control is "pressed" with the press
// command.  With AMQP configured, booking intents emitted through the
// host channel are also relayed to the booking.intent queue.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/eventory/miniapp-storefront/internal/app"
	"github.com/eventory/miniapp-storefront/internal/bridge"
	"github.com/eventory/miniapp-storefront/internal/catalog"
	"github.com/eventory/miniapp-storefront/internal/config"
	"github.com/eventory/miniapp-storefront/internal/database"
	"github.com/eventory/miniapp-storefront/internal/host"
	"github.com/eventory/miniapp-storefront/internal/inventory"
	"github.com/eventory/miniapp-storefront/internal/model"
	"github.com/eventory/miniapp-storefront/internal/navigation"
	"github.com/eventory/miniapp-storefront/internal/queue"
	"github.com/eventory/miniapp-storefront/internal/repository"
)

// relayHost forwards outbound payloads to the booking-intent queue in
// addition to the simulated host's own recording.
type relayHost struct {
	*host.Sim
	identity model.Identity
}

func (h *relayHost) Send(payload []byte) error {
	if err := h.Sim.Send(payload); err != nil {
		return err
	}
	var p struct {
		Action  string `json:"action"`
		EventID string `json:"eventId"`
	}
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil
	}
	ev := queue.BookingIntentEvent{
		Action:    p.Action,
		EventID:   p.EventID,
		UserID:    h.identity.ID,
		EmittedAt: time.Now().UTC().Format(time.RFC3339),
	}
	// Relay failures are logged inside the publisher; the session goes on.
	_ = queue.PublishBookingIntent(context.Background(), ev)
	return nil
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	var store catalog.Store
	if cfg.UseMySQL {
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("storefront: open database: %v", err)
		}
		defer db.Close()
		store = repository.NewSQLStore(db)
	} else {
		store = catalog.NewFixtureStore()
	}
	if client := config.NewRedisClient(); client != nil {
		store = catalog.WithLiveCounts(store, inventory.NewRedisCounter(client))
		log.Printf("storefront: live inventory overlay enabled")
	}

	identity := demoIdentity()
	initData, err := host.SignIdentity(cfg.HostSecret, identity)
	if err != nil {
		log.Fatalf("storefront: sign demo identity: %v", err)
	}
	sim := host.NewSim(initData)

	var rt host.Runtime = sim
	if cfg.UseAMQP {
		rt = &relayHost{Sim: sim, identity: identity}
		log.Printf("storefront: relaying booking intents to %s", queue.IntentQueueName)
	}

	br := bridge.New(func() (host.Runtime, bool) { return rt, true }, cfg.HostSecret)
	front := app.New(store, br)
	front.Nav.OnScrollReset(func() { fmt.Println("-- scroll reset --") })

	// The simulated host is always announced, so a single attempt
	// suffices; a real embedding retries on ErrNotReady while showing
	// the waiting state.
	if err := front.Start(); err != nil {
		log.Fatalf("storefront: start: %v", err)
	}

	fmt.Printf("signed in as %s (id %d)\n", identity.Name, identity.ID)
	repl(front, sim)
}

// demoIdentity builds the identity the simulated host hands over,
// overridable through DEMO_USER_ID / DEMO_USER_NAME.
func demoIdentity() model.Identity {
	id := int64(123456789)
	if raw := os.Getenv("DEMO_USER_ID"); raw != "" {
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			id = n
		}
	}
	name := os.Getenv("DEMO_USER_NAME")
	if name == "" {
		name = "Demo User"
	}
	return model.Identity{ID: id, Name: name, Username: "demo"}
}

func repl(front *app.Storefront, sim *host.Sim) {
	fmt.Println(`commands: home | open <event-id> | filter <category-id|featured> | inc <tkt-id> | dec <tkt-id> | press | bookings | profile | state | quit`)
	sc := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !sc.Scan() {
			return
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		arg := ""
		if len(fields) > 1 {
			arg = fields[1]
		}
		switch fields[0] {
		case "quit", "exit":
			return
		case "home":
			front.Nav.Navigate(navigation.ScreenHome, nil)
		case "open":
			front.OpenEvent(arg)
		case "filter":
			if arg == "" || arg == "featured" {
				front.Home.SelectFeatured()
			} else {
				front.Home.SelectCategory(arg)
			}
		case "inc":
			front.Details.Increment(arg)
		case "dec":
			front.Details.Decrement(arg)
		case "press":
			sim.Button().Activate()
		case "bookings":
			front.Nav.Navigate(navigation.ScreenMyBookings, nil)
		case "profile":
			front.Nav.Navigate(navigation.ScreenProfile, nil)
		case "state":
		default:
			fmt.Println("unknown command")
			continue
		}
		render(front, sim)
	}
}

func render(front *app.Storefront, sim *host.Sim) {
	st := front.Nav.State()
	fmt.Printf("[%s]\n", st.Screen)
	switch st.Screen {
	case navigation.ScreenHome:
		for _, e := range front.Home.Events() {
			fmt.Printf("  %s  %s (%s)\n", e.ID, e.Title, e.Location)
		}
	case navigation.ScreenEventDetails:
		if !front.Details.Loaded() {
			fmt.Println("  loading…")
			break
		}
		e := front.Details.Event()
		fmt.Printf("  %s — %s\n", e.Title, e.StartsAt.Format("Jan 2 15:04 MST"))
		basket := front.Details.Basket()
		for _, id := range basket.TicketTypeIDs() {
			m := basket.Model(id)
			t := e.TicketType(id)
			status := fmt.Sprintf("%d left", m.Availability())
			if m.SoldOut() {
				status = "sold out"
			}
			fmt.Printf("  %s  %-18s %6.2f %s  [%s]  qty=%d\n",
				id, t.Name, float64(t.PriceCents)/100, t.Currency, status, m.Current())
		}
	case navigation.ScreenMyBookings:
		entries := front.Bookings.Entries()
		if len(entries) == 0 {
			fmt.Println("  no bookings")
		}
		for _, en := range entries {
			fmt.Printf("  %s  %s (%s) ref=%s\n", en.Booking.ID, en.Event.Title, en.Booking.Status, en.Booking.Reference)
		}
	case navigation.ScreenProfile:
		id := front.Profile.Identity()
		fmt.Printf("  %s (@%s) id=%d\n", id.Name, id.Username, id.ID)
	}
	btn := sim.Button()
	if btn.Visible() {
		fmt.Printf("  [main button: %q]\n", btn.Label())
	}
}
