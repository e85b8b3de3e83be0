package store_test

import (
	"context"
	"time"

	"github.com/4kternos/fitting-room/internal/config"
	"github.com/4kternos/fitting-room/internal/sizing"
	st "github.com/4kternos/fitting-room/internal/store"
	"github.com/4kternos/fitting-room/internal/store/model"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
)

var _ = Describe("Store", Ordered, func() {
	var (
		store  st.Store
		gormDB *gorm.DB
	)

	BeforeAll(func() {
		cfg := config.NewDefault()
		db, err := st.InitDB(cfg)
		Expect(err).To(BeNil())
		gormDB = db

		store = st.NewStore(db)
		Expect(store).ToNot(BeNil())
		Expect(store.InitialMigration(context.TODO())).To(Succeed())
	})

	AfterAll(func() {
		store.Close()
	})

	AfterEach(func() {
		gormDB.Exec("DELETE FROM fitting_sessions;")
	})

	Context("transaction", func() {
		It("insert a session successfully", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			m := model.NewFittingSession(uuid.New(), sizing.DefaultMeasurements(), time.Now().UTC().Add(time.Hour))
			session, err := store.Session().Create(ctx, m)
			Expect(session).ToNot(BeNil())
			Expect(err).To(BeNil())

			_, cerr := st.Commit(ctx)
			Expect(cerr).To(BeNil())

			count := 0
			err = gormDB.Raw("SELECT COUNT(*) from fitting_sessions;").Scan(&count).Error
			Expect(err).To(BeNil())
			Expect(count).To(Equal(1))
		})

		It("rollback a session successfully", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			m := model.NewFittingSession(uuid.New(), sizing.DefaultMeasurements(), time.Now().UTC().Add(time.Hour))
			_, err = store.Session().Create(ctx, m)
			Expect(err).To(BeNil())

			_, rerr := st.Rollback(ctx)
			Expect(rerr).To(BeNil())

			count := 0
			err = gormDB.Raw("SELECT COUNT(*) from fitting_sessions;").Scan(&count).Error
			Expect(err).To(BeNil())
			Expect(count).To(Equal(0))
		})

		It("reuses the transaction already in the context", func() {
			ctx, err := store.NewTransactionContext(context.TODO())
			Expect(err).To(BeNil())

			nested, err := store.NewTransactionContext(ctx)
			Expect(err).To(BeNil())
			Expect(st.FromContext(nested)).To(BeIdenticalTo(st.FromContext(ctx)))

			_, err = st.Rollback(ctx)
			Expect(err).To(BeNil())
		})

		It("commit without transaction is a no-op", func() {
			ctx := context.TODO()
			newCtx, err := st.Commit(ctx)
			Expect(err).To(BeNil())
			Expect(newCtx).To(Equal(ctx))
		})
	})
})
