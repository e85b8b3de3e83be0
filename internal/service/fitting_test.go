package service_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/4kternos/fitting-room/internal/config"
	"github.com/4kternos/fitting-room/internal/service"
	"github.com/4kternos/fitting-room/internal/sizing"
	"github.com/4kternos/fitting-room/internal/store"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

const insertSessionStm = "INSERT INTO fitting_sessions (id, height, weight, age, chest_adjust, waist_adjust, hip_adjust, created_at, updated_at, expires_at) VALUES ('%s', 175, %f, 30, %d, 0, 0, ?, ?, ?);"

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

var _ = Describe("fitting service", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
		clock  *fakeClock
		srv    *service.FittingService
	)

	const ttl = 30 * time.Minute

	BeforeAll(func() {
		db, err := store.InitDB(config.NewDefault())
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration(context.TODO())).To(Succeed())
	})

	AfterAll(func() {
		s.Close()
	})

	BeforeEach(func() {
		clock = &fakeClock{now: time.Now().UTC().Truncate(time.Second)}
		srv = service.NewFittingService(s, ttl, service.WithClock(clock.Now))
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM fitting_sessions;")
	})

	insertSession := func(weight float64, chest int, expiresAt time.Time) uuid.UUID {
		id := uuid.New()
		tx := gormdb.Exec(fmt.Sprintf(insertSessionStm, id, weight, chest), clock.now, clock.now, expiresAt)
		Expect(tx.Error).To(BeNil())
		return id
	}

	Context("recommend", func() {
		It("returns the sizes of the weight band", func() {
			rec := srv.Recommend(context.TODO(), sizing.Measurements{Height: 180, Weight: 90, Age: 35, ChestAdjust: 3})
			Expect(rec).To(Equal(sizing.SuitRecommendation{Jacket: 56, Trousers: 50}))
		})

		It("does not validate ranges", func() {
			rec := srv.Recommend(context.TODO(), sizing.Measurements{Weight: -10, ChestAdjust: 50})
			Expect(rec).To(Equal(sizing.SuitRecommendation{Jacket: 48, Trousers: 42}))
		})
	})

	Context("create", func() {
		It("starts from the form defaults when no measurements are given", func() {
			fitting, err := srv.CreateSession(context.TODO(), nil)
			Expect(err).To(BeNil())
			Expect(fitting.Session.ID).ToNot(Equal(uuid.Nil))
			Expect(fitting.Session.Measurements()).To(Equal(sizing.DefaultMeasurements()))
			Expect(fitting.Recommendation).To(Equal(sizing.SuitRecommendation{Jacket: 52, Trousers: 46}))
			Expect(fitting.Summary).To(ContainSubstring("jacket 52 and trousers 46"))
			Expect(fitting.Session.ExpiresAt).To(BeTemporally("==", clock.now.Add(ttl)))

			var count int
			tx := gormdb.Raw("SELECT COUNT(*) FROM fitting_sessions;").Scan(&count)
			Expect(tx.Error).To(BeNil())
			Expect(count).To(Equal(1))
		})

		It("stores the given measurements", func() {
			m := sizing.Measurements{Height: 190, Weight: 120, Age: 45, ChestAdjust: 5, WaistAdjust: -5, HipAdjust: 2}
			fitting, err := srv.CreateSession(context.TODO(), &m)
			Expect(err).To(BeNil())
			Expect(fitting.Recommendation).To(Equal(sizing.SuitRecommendation{Jacket: 62, Trousers: 56}))

			stored, err := s.Session().Get(context.TODO(), fitting.Session.ID)
			Expect(err).To(BeNil())
			Expect(stored.Measurements()).To(Equal(m))
		})
	})

	Context("get", func() {
		It("recomputes the recommendation from the stored measurements", func() {
			id := insertSession(100, 3, clock.now.Add(time.Hour))

			fitting, err := srv.GetSession(context.TODO(), id)
			Expect(err).To(BeNil())
			Expect(fitting.Recommendation).To(Equal(sizing.SuitRecommendation{Jacket: 58, Trousers: 52}))
		})

		It("fails with not found for an unknown session", func() {
			_, err := srv.GetSession(context.TODO(), uuid.New())
			Expect(err).ToNot(BeNil())
			var notFound *service.ErrResourceNotFound
			Expect(errors.As(err, &notFound)).To(BeTrue())
		})

		It("fails with not found for an expired session", func() {
			id := insertSession(80, 0, clock.now.Add(-time.Second))

			_, err := srv.GetSession(context.TODO(), id)
			var notFound *service.ErrResourceNotFound
			Expect(errors.As(err, &notFound)).To(BeTrue())
		})
	})

	Context("update", func() {
		It("moves the jacket up when the chest slider passes 2", func() {
			fitting, err := srv.CreateSession(context.TODO(), nil)
			Expect(err).To(BeNil())

			chest := 3
			updated, err := srv.UpdateSession(context.TODO(), fitting.Session.ID, service.MeasurementsUpdate{ChestAdjust: &chest})
			Expect(err).To(BeNil())
			Expect(updated.Recommendation).To(Equal(sizing.SuitRecommendation{Jacket: 54, Trousers: 48}))
			Expect(updated.Session.Weight).To(Equal(80.0))
			Expect(updated.Session.Height).To(Equal(175.0))
		})

		It("writes a slider moved back to zero", func() {
			m := sizing.Measurements{Height: 175, Weight: 80, Age: 30, ChestAdjust: 4}
			fitting, err := srv.CreateSession(context.TODO(), &m)
			Expect(err).To(BeNil())
			Expect(fitting.Recommendation.Jacket).To(Equal(54))

			zero := 0
			_, err = srv.UpdateSession(context.TODO(), fitting.Session.ID, service.MeasurementsUpdate{ChestAdjust: &zero})
			Expect(err).To(BeNil())

			reloaded, err := srv.GetSession(context.TODO(), fitting.Session.ID)
			Expect(err).To(BeNil())
			Expect(reloaded.Session.ChestAdjust).To(Equal(0))
			Expect(reloaded.Recommendation.Jacket).To(Equal(52))
		})

		It("extends the expiration", func() {
			fitting, err := srv.CreateSession(context.TODO(), nil)
			Expect(err).To(BeNil())

			clock.Advance(20 * time.Minute)
			weight := 96.0
			updated, err := srv.UpdateSession(context.TODO(), fitting.Session.ID, service.MeasurementsUpdate{Weight: &weight})
			Expect(err).To(BeNil())
			Expect(updated.Session.ExpiresAt).To(BeTemporally("==", clock.now.Add(ttl)))
			Expect(updated.Recommendation.Jacket).To(Equal(56))

			clock.Advance(20 * time.Minute)
			_, err = srv.GetSession(context.TODO(), fitting.Session.ID)
			Expect(err).To(BeNil())
		})

		It("fails with not found for an unknown session", func() {
			weight := 96.0
			_, err := srv.UpdateSession(context.TODO(), uuid.New(), service.MeasurementsUpdate{Weight: &weight})
			var notFound *service.ErrResourceNotFound
			Expect(errors.As(err, &notFound)).To(BeTrue())
		})

		It("fails with not found for an expired session", func() {
			fitting, err := srv.CreateSession(context.TODO(), nil)
			Expect(err).To(BeNil())

			clock.Advance(ttl)
			_, err = srv.UpdateSession(context.TODO(), fitting.Session.ID, service.MeasurementsUpdate{})
			var notFound *service.ErrResourceNotFound
			Expect(errors.As(err, &notFound)).To(BeTrue())
		})
	})

	Context("delete", func() {
		It("returns the last state and forgets the session", func() {
			m := sizing.Measurements{Height: 175, Weight: 70.5, Age: 30}
			fitting, err := srv.CreateSession(context.TODO(), &m)
			Expect(err).To(BeNil())

			deleted, err := srv.DeleteSession(context.TODO(), fitting.Session.ID)
			Expect(err).To(BeNil())
			Expect(deleted.Recommendation).To(Equal(sizing.SuitRecommendation{Jacket: 50, Trousers: 44}))

			_, err = srv.GetSession(context.TODO(), fitting.Session.ID)
			var notFound *service.ErrResourceNotFound
			Expect(errors.As(err, &notFound)).To(BeTrue())
		})

		It("fails with not found for an unknown session", func() {
			_, err := srv.DeleteSession(context.TODO(), uuid.New())
			var notFound *service.ErrResourceNotFound
			Expect(errors.As(err, &notFound)).To(BeTrue())
		})
	})

	Context("reap", func() {
		It("removes only the expired sessions", func() {
			insertSession(80, 0, clock.now.Add(-time.Hour))
			insertSession(80, 0, clock.now)
			live := insertSession(80, 0, clock.now.Add(time.Hour))

			deleted, err := srv.ReapExpired(context.TODO())
			Expect(err).To(BeNil())
			Expect(deleted).To(Equal(2))

			_, err = srv.GetSession(context.TODO(), live)
			Expect(err).To(BeNil())
		})

		It("runs on a ticker until cancelled", func() {
			srv = service.NewFittingService(s, ttl)
			insertSession(80, 0, time.Now().UTC().Add(-time.Hour))

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan struct{})
			go func() {
				defer close(done)
				service.NewSessionReaper(srv, 200*time.Millisecond).Run(ctx)
			}()

			Eventually(func() int {
				var count int
				gormdb.Raw("SELECT COUNT(*) FROM fitting_sessions;").Scan(&count)
				return count
			}, 3*time.Second, 50*time.Millisecond).Should(Equal(0))

			cancel()
			Eventually(done).Should(BeClosed())
		})
	})
})
