package system

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/lumenwatch/tower/chain"
	"github.com/lumenwatch/tower/storage"
)

func TestSystemKeeper(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "SystemKeeper Suite")
}

var _ = Describe("Keeper", func() {
	var db *storage.Badger
	var err error
	var keeper *Keeper

	BeforeEach(func() {
		db, err = storage.NewBadger("")
		Expect(err).To(BeNil())
		keeper = NewKeeper(db)
	})

	AfterEach(func() {
		Expect(db.Close()).To(BeNil())
	})

	Describe(".GetLastBlockHeader", func() {
		It("should return ErrRecordNotFound when nothing was stored", func() {
			_, err := keeper.GetLastBlockHeader()
			Expect(err).To(Equal(storage.ErrRecordNotFound))
		})

		It("should return the stored header", func() {
			header := &chain.Header{
				Hash:     chain.RandomHash(),
				PrevHash: chain.RandomHash(),
				Height:   42,
				Time:     1234567890,
			}
			Expect(keeper.SetLastBlockHeader(header)).To(BeNil())

			loaded, err := keeper.GetLastBlockHeader()
			Expect(err).To(BeNil())
			Expect(loaded).To(Equal(header))
		})
	})
})
