package user

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	uuid "github.com/satori/go.uuid"

	"github.com/lumenwatch/tower/crypto"
	"github.com/lumenwatch/tower/storage"
	"github.com/lumenwatch/tower/types"
	"github.com/lumenwatch/tower/types/state"
)

func TestUserKeeper(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "UserKeeper Suite")
}

func randomUserID() types.UserID {
	key, err := crypto.NewKey(nil)
	if err != nil {
		panic(err)
	}
	return types.NewUserID(key.PubKey())
}

var _ = Describe("Keeper", func() {
	var db *storage.Badger
	var err error
	var keeper *Keeper
	var userID types.UserID

	BeforeEach(func() {
		db, err = storage.NewBadger("")
		Expect(err).To(BeNil())
		keeper = NewKeeper(db)
		userID = randomUserID()
	})

	AfterEach(func() {
		Expect(db.Close()).To(BeNil())
	})

	Describe(".Store", func() {
		It("should insert a new user", func() {
			info := state.NewUserInfo(10, 100)
			Expect(keeper.Store(userID, info)).To(BeNil())

			loaded, err := keeper.Load(userID)
			Expect(err).To(BeNil())
			Expect(loaded).To(Equal(info))
		})

		It("should fail when the user already exists", func() {
			Expect(keeper.Store(userID, state.NewUserInfo(10, 100))).To(BeNil())
			err := keeper.Store(userID, state.NewUserInfo(20, 200))
			Expect(err).To(Equal(ErrUserExists))
		})
	})

	Describe(".Update", func() {
		It("should upsert the user state including appointments", func() {
			info := state.NewUserInfo(10, 100)
			Expect(keeper.Store(userID, info)).To(BeNil())

			appointmentID := uuid.NewV4()
			info.AvailableSlots = 8
			info.Appointments[appointmentID] = 2
			Expect(keeper.Update(userID, info)).To(BeNil())

			loaded, err := keeper.Load(userID)
			Expect(err).To(BeNil())
			Expect(loaded.AvailableSlots).To(Equal(uint32(8)))
			Expect(loaded.Appointments).To(HaveKeyWithValue(appointmentID, uint32(2)))
		})
	})

	Describe(".Load", func() {
		It("should return ErrUserNotFound for an unknown user", func() {
			_, err := keeper.Load(userID)
			Expect(err).To(Equal(ErrUserNotFound))
		})
	})

	Describe(".Remove", func() {
		It("should delete the user record", func() {
			Expect(keeper.Store(userID, state.NewUserInfo(10, 100))).To(BeNil())
			Expect(keeper.Remove(userID)).To(BeNil())
			_, err := keeper.Load(userID)
			Expect(err).To(Equal(ErrUserNotFound))
		})

		It("should be a no-op for an unknown user", func() {
			Expect(keeper.Remove(userID)).To(BeNil())
		})
	})

	Describe(".ForEach", func() {
		It("should visit every stored user", func() {
			ids := map[types.UserID]struct{}{}
			for i := 0; i < 3; i++ {
				id := randomUserID()
				ids[id] = struct{}{}
				Expect(keeper.Store(id, state.NewUserInfo(10, 100))).To(BeNil())
			}

			visited := map[types.UserID]struct{}{}
			err := keeper.ForEach(func(id types.UserID, info *state.UserInfo) bool {
				visited[id] = struct{}{}
				return false
			})
			Expect(err).To(BeNil())
			Expect(visited).To(Equal(ids))
		})

		It("should stop when fn returns true", func() {
			for i := 0; i < 3; i++ {
				Expect(keeper.Store(randomUserID(), state.NewUserInfo(10, 100))).To(BeNil())
			}
			var count int
			err := keeper.ForEach(func(id types.UserID, info *state.UserInfo) bool {
				count++
				return true
			})
			Expect(err).To(BeNil())
			Expect(count).To(Equal(1))
		})
	})
})
