package request_booking_test

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/salon-booking/internal/domain"
	appointmentRepo "github.com/m04kA/salon-booking/internal/infra/storage/appointment"
	blockRepo "github.com/m04kA/salon-booking/internal/infra/storage/block"
	catalogRepo "github.com/m04kA/salon-booking/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/salon-booking/internal/infra/storage/client"
	"github.com/m04kA/salon-booking/internal/service/availability"
	requestBooking "github.com/m04kA/salon-booking/internal/usecase/request_booking"
	"github.com/m04kA/salon-booking/pkg/dbmetrics"
	"github.com/m04kA/salon-booking/pkg/logger"
	"github.com/m04kA/salon-booking/pkg/txmanager"
)

const testDatabaseEnv = "SALON_TEST_DATABASE_URL"

type fixture struct {
	uc        *requestBooking.UseCase
	blocks    *blockRepo.Repository
	clientID  int64
	serviceID int64
	stylistID int64
}

// withSearchPath направляет все соединения пула в отдельную схему
func withSearchPath(dsn, schema string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		return dsn + sep + "search_path=" + schema
	}
	return dsn + " search_path=" + schema
}

func setupPostgres(t *testing.T) *fixture {
	t.Helper()

	dsn := os.Getenv(testDatabaseEnv)
	if dsn == "" {
		t.Skipf("%s is not set", testDatabaseEnv)
	}

	admin, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = admin.Close() })

	schema := fmt.Sprintf("salon_test_%d", time.Now().UnixNano())
	_, err = admin.Exec("CREATE SCHEMA " + schema)
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = admin.Exec("DROP SCHEMA " + schema + " CASCADE") })

	db, err := sql.Open("postgres", withSearchPath(dsn, schema))
	require.NoError(t, err)
	db.SetMaxOpenConns(25)
	t.Cleanup(func() { _ = db.Close() })

	migration, err := os.ReadFile("../../../migrations/001_init.sql")
	require.NoError(t, err)
	_, err = db.Exec(string(migration))
	require.NoError(t, err)

	ctx := context.Background()
	wrapped := dbmetrics.Wrap(db, nil)

	clients := clientRepo.NewRepository(wrapped)
	client, err := clients.Create(ctx, &domain.Client{Name: "Lucía", Phone: "+5491100000000", PasswordHash: "x"})
	require.NoError(t, err)

	var serviceID int64
	require.NoError(t, db.QueryRow(
		"INSERT INTO services (name, price, duration_minutes) VALUES ('Corte', 5000, 60) RETURNING id",
	).Scan(&serviceID))

	catalog := catalogRepo.NewRepository(wrapped)
	stylist, err := catalog.CreateStylist(ctx, &domain.Stylist{Name: "Ana", ServiceIDs: []int64{serviceID}})
	require.NoError(t, err)

	appointments := appointmentRepo.NewRepository(wrapped)
	blocks := blockRepo.NewRepository(wrapped)

	uc := requestBooking.NewUseCase(
		appointments,
		catalog,
		availability.NewLedger(blocks, appointments),
		txmanager.NewTransactionManager(wrapped),
		nil,
		requestBooking.Options{Location: time.UTC, EnforceEligibility: true},
		logger.Nop{},
	)

	return &fixture{
		uc:        uc,
		blocks:    blocks,
		clientID:  client.ID,
		serviceID: serviceID,
		stylistID: stylist.ID,
	}
}

func (f *fixture) request(date, slot string) *requestBooking.Request {
	stylistID := f.stylistID
	return &requestBooking.Request{
		ClientID:  f.clientID,
		ServiceID: f.serviceID,
		StylistID: &stylistID,
		Date:      date,
		Time:      slot,
	}
}

func TestPostgres_ConcurrentBookingsSingleWinner(t *testing.T) {
	f := setupPostgres(t)
	date := time.Now().UTC().AddDate(0, 0, 7).Format(domain.DateFormat)

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		occupied  int
		other     []error
	)

	start := make(chan struct{})
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			_, err := f.uc.Execute(context.Background(), f.request(date, "10:00"))

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, requestBooking.ErrSlotOccupied):
				occupied++
			default:
				other = append(other, err)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Empty(t, other)
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, workers-1, occupied)
}

func TestPostgres_BlocksAreHonoured(t *testing.T) {
	f := setupPostgres(t)
	ctx := context.Background()

	day := time.Now().UTC().AddDate(0, 0, 3)
	dayStr := day.Format(domain.DateFormat)

	_, _, err := f.blocks.CreateSlot(ctx, &domain.BlockedSlot{StylistID: f.stylistID, Date: domain.DateOnly(day), Time: "15:00"})
	require.NoError(t, err)

	_, err = f.uc.Execute(ctx, f.request(dayStr, "15:00"))
	assert.ErrorIs(t, err, requestBooking.ErrSlotOccupied)

	resp, err := f.uc.Execute(ctx, f.request(dayStr, "16:00"))
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	_, _, err = f.blocks.CreateDay(ctx, &domain.BlockedDay{StylistID: f.stylistID, Date: domain.DateOnly(day)})
	require.NoError(t, err)

	_, err = f.uc.Execute(ctx, f.request(dayStr, "17:00"))
	assert.ErrorIs(t, err, requestBooking.ErrStylistUnavailableDay)
}
