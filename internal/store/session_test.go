package store_test

import (
	"context"
	"time"

	"github.com/4kternos/fitting-room/internal/config"
	"github.com/4kternos/fitting-room/internal/sizing"
	"github.com/4kternos/fitting-room/internal/store"
	"github.com/4kternos/fitting-room/internal/store/model"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("session store", Ordered, func() {
	var (
		s      store.Store
		gormdb *gorm.DB
		now    time.Time
	)

	BeforeAll(func() {
		cfg := config.NewDefault()
		db, err := store.InitDB(cfg)
		Expect(err).To(BeNil())

		s = store.NewStore(db)
		gormdb = db
		Expect(s.InitialMigration(context.TODO())).To(Succeed())
	})

	AfterAll(func() {
		s.Close()
	})

	BeforeEach(func() {
		now = time.Now().UTC()
	})

	AfterEach(func() {
		gormdb.Exec("DELETE FROM fitting_sessions;")
	})

	Context("create", func() {
		It("successfully creates a session", func() {
			id := uuid.New()
			m := sizing.Measurements{Height: 180, Weight: 96, Age: 33, ChestAdjust: 4, WaistAdjust: -2, HipAdjust: 1}

			session, err := s.Session().Create(context.TODO(), model.NewFittingSession(id, m, now.Add(time.Hour)))
			Expect(err).To(BeNil())
			Expect(session.ID).To(Equal(id))
			Expect(session.CreatedAt).ToNot(BeZero())

			var count int
			tx := gormdb.Raw("SELECT COUNT(*) FROM fitting_sessions;").Scan(&count)
			Expect(tx.Error).To(BeNil())
			Expect(count).To(Equal(1))
		})

		It("refuses a duplicated id", func() {
			id := uuid.New()
			_, err := s.Session().Create(context.TODO(), model.NewFittingSession(id, sizing.DefaultMeasurements(), now.Add(time.Hour)))
			Expect(err).To(BeNil())

			_, err = s.Session().Create(context.TODO(), model.NewFittingSession(id, sizing.DefaultMeasurements(), now.Add(time.Hour)))
			Expect(err).To(Equal(store.ErrDuplicateKey))
		})
	})

	Context("get", func() {
		It("successfully returns the stored measurements", func() {
			id := uuid.New()
			m := sizing.Measurements{Height: 170, Weight: 64.5, Age: 22, ChestAdjust: -3, WaistAdjust: 5, HipAdjust: -5}
			_, err := s.Session().Create(context.TODO(), model.NewFittingSession(id, m, now.Add(time.Hour)))
			Expect(err).To(BeNil())

			session, err := s.Session().Get(context.TODO(), id)
			Expect(err).To(BeNil())
			Expect(session.Measurements()).To(Equal(m))
			Expect(session.ExpiresAt).To(BeTemporally("~", now.Add(time.Hour), time.Second))
		})

		It("returns ErrRecordNotFound when the session does not exist", func() {
			_, err := s.Session().Get(context.TODO(), uuid.New())
			Expect(err).To(Equal(store.ErrRecordNotFound))
		})
	})

	Context("update", func() {
		It("writes zero values", func() {
			id := uuid.New()
			m := sizing.Measurements{Height: 175, Weight: 80, Age: 30, ChestAdjust: 3}
			created, err := s.Session().Create(context.TODO(), model.NewFittingSession(id, m, now.Add(time.Hour)))
			Expect(err).To(BeNil())

			m.ChestAdjust = 0
			created.SetMeasurements(m)
			created.ExpiresAt = now.Add(2 * time.Hour)
			_, err = s.Session().Update(context.TODO(), *created)
			Expect(err).To(BeNil())

			session, err := s.Session().Get(context.TODO(), id)
			Expect(err).To(BeNil())
			Expect(session.ChestAdjust).To(Equal(0))
			Expect(session.ExpiresAt).To(BeTemporally("~", now.Add(2*time.Hour), time.Second))
		})

		It("returns ErrRecordNotFound for an unknown session", func() {
			_, err := s.Session().Update(context.TODO(), model.NewFittingSession(uuid.New(), sizing.DefaultMeasurements(), now))
			Expect(err).To(Equal(store.ErrRecordNotFound))
		})
	})

	Context("delete", func() {
		It("successfully deletes a session", func() {
			id := uuid.New()
			_, err := s.Session().Create(context.TODO(), model.NewFittingSession(id, sizing.DefaultMeasurements(), now.Add(time.Hour)))
			Expect(err).To(BeNil())

			Expect(s.Session().Delete(context.TODO(), id)).To(Succeed())

			_, err = s.Session().Get(context.TODO(), id)
			Expect(err).To(Equal(store.ErrRecordNotFound))
		})

		It("returns ErrRecordNotFound for an unknown session", func() {
			Expect(s.Session().Delete(context.TODO(), uuid.New())).To(MatchError(store.ErrRecordNotFound))
		})
	})

	Context("expiration", func() {
		BeforeEach(func() {
			for _, offset := range []time.Duration{-time.Hour, -time.Minute, time.Minute, time.Hour, 2 * time.Hour} {
				_, err := s.Session().Create(context.TODO(), model.NewFittingSession(uuid.New(), sizing.DefaultMeasurements(), now.Add(offset)))
				Expect(err).To(BeNil())
			}
		})

		It("counts only active sessions", func() {
			count, err := s.Session().CountActive(context.TODO(), now)
			Expect(err).To(BeNil())
			Expect(count).To(BeEquivalentTo(3))
		})

		It("deletes only expired sessions", func() {
			deleted, err := s.Session().DeleteExpired(context.TODO(), now)
			Expect(err).To(BeNil())
			Expect(deleted).To(BeEquivalentTo(2))

			var count int
			tx := gormdb.Raw("SELECT COUNT(*) FROM fitting_sessions;").Scan(&count)
			Expect(tx.Error).To(BeNil())
			Expect(count).To(Equal(3))
		})
	})
})
