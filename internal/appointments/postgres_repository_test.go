package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestPostgresListByOwner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	created := time.Now().UTC()
	mock.ExpectQuery("SELECT id, service, module, partner").
		WithArgs("sess-1").
		WillReturnRows(pgxmock.NewRows([]string{"id", "service", "module", "partner", "booked_date", "booked_time", "price", "status", "created_at"}).
			AddRow(uuid.New(), "Yoga Session (Single)", "RejuvaFit", "Yoga Studio Plus", "2025-11-12", "10:00 AM", "₹800", Status("upcoming"), created))

	appts, err := repo.ListByOwner(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("list by owner: %v", err)
	}
	if len(appts) != 1 || appts[0].Service != "Yoga Session (Single)" || appts[0].Status != StatusUpcoming {
		t.Errorf("unexpected appointments: %+v", appts)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresAdd(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock: %v", err)
	}
	defer mock.Close()

	repo := NewPostgresRepository(mock)
	mock.ExpectExec("INSERT INTO appointments").
		WithArgs(pgxmock.AnyArg(), "sess-1", "Spa Package", "BlissTouch", "BlissTouch Services", "25/12/2025", "11:00 AM", "₹4,999", "upcoming", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	added, err := repo.Add(context.Background(), "sess-1", Appointment{
		Service: "Spa Package",
		Module:  "BlissTouch",
		Partner: "BlissTouch Services",
		Date:    "25/12/2025",
		Time:    "11:00 AM",
		Price:   "₹4,999",
		Status:  StatusUpcoming,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if added.ID == "" || added.CreatedAt.IsZero() {
		t.Errorf("expected populated ID and CreatedAt, got %+v", added)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
