package resonite_test

import (
	"github.com/dergwasm/go-resonite"
	"github.com/dergwasm/go-resonite/world"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Slots", func() {
	When("the host is faked", func() {
		var host *fakeHost

		BeforeEach(func() {
			host = &fakeHost{
				heap:        &countingHeap{strings: map[uint32]string{32: "Root"}},
				rootSlot:    1,
				numChildren: 2,
				children:    map[int32]resonite.SlotRef{0: 10, 1: 11},
			}
		})

		It("reports a missing root", func() {
			host.rootSlot = 0
			_, err := resonite.RootSlot(host)
			Expect(err).To(MatchError(resonite.ErrNullOrNotFound))
		})

		It("returns absence past the last child", func() {
			root, err := resonite.RootSlot(host)
			Expect(err).To(BeNil())
			Expect(root.Children().Len()).To(Equal(2))

			_, ok := root.Children().Get(3)
			Expect(ok).To(BeFalse())
			_, ok = root.Children().Get(-1)
			Expect(ok).To(BeFalse())

			c, ok := root.Children().Get(1)
			Expect(ok).To(BeTrue())
			Expect(c.Ref()).To(Equal(resonite.SlotRef(11)))
		})

		It("reads and frees the name", func() {
			host.namePtr = 32
			root, err := resonite.RootSlot(host)
			Expect(err).To(BeNil())

			name, ok := root.Name()
			Expect(ok).To(BeTrue())
			Expect(name).To(Equal("Root"))
			Expect(host.heap.freed).To(Equal([]uint32{32}))
		})

		It("reports a null name as absent", func() {
			root, err := resonite.RootSlot(host)
			Expect(err).To(BeNil())

			name, ok := root.Name()
			Expect(ok).To(BeFalse())
			Expect(name).To(BeEmpty())
			Expect(host.heap.freed).To(BeEmpty())
		})

		It("clamps a negative child count", func() {
			host.numChildren = -2
			root, err := resonite.RootSlot(host)
			Expect(err).To(BeNil())
			Expect(root.Children().Len()).To(BeZero())
		})

		It("panics on a name with a NUL byte", func() {
			root, err := resonite.RootSlot(host)
			Expect(err).To(BeNil())
			Expect(func() { _ = root.SetName("a\x00b") }).To(Panic())
		})
	})

	When("the host is a world", func() {
		var (
			w    *world.World
			root resonite.Slot
		)

		BeforeEach(func() {
			var err error
			w, err = world.LoadFixtureFile("world/testdata/world.yaml")
			Expect(err).To(BeNil())
			root, err = resonite.RootSlot(w.Host())
			Expect(err).To(BeNil())
		})

		AfterEach(func() {
			Expect(w.Heap().Live()).To(BeZero())
			Expect(w.Heap().BadFrees()).To(BeZero())
		})

		It("walks the children", func() {
			names := []string{}
			for c := range root.Children().All() {
				name, ok := c.Name()
				Expect(ok).To(BeTrue())
				names = append(names, name)
			}
			Expect(names).To(Equal([]string{"Table", "Lamp", "User alice"}))
			Expect(w.Heap().Frees()).To(Equal(3))
		})

		It("stops walking when asked to", func() {
			n := 0
			for range root.Children().All() {
				n++
				break
			}
			Expect(n).To(Equal(1))
		})

		It("renames slots", func() {
			lamp, ok := root.Children().FindByName("Lamp", false, false, 0)
			Expect(ok).To(BeTrue())
			Expect(lamp.SetName("Light")).To(Succeed())
			name, ok := lamp.Name()
			Expect(ok).To(BeTrue())
			Expect(name).To(Equal("Light"))
		})

		It("finds the parent", func() {
			bulb, ok := root.Children().FindByName("bul", true, true, -1)
			Expect(ok).To(BeTrue())
			lamp, ok := bulb.Parent()
			Expect(ok).To(BeTrue())
			parent, ok := lamp.Parent()
			Expect(ok).To(BeTrue())
			Expect(parent.Ref()).To(Equal(root.Ref()))

			_, ok = root.Parent()
			Expect(ok).To(BeFalse())
		})

		It("finds the active user", func() {
			hat, ok := root.Children().FindByTag("wearable", -1)
			Expect(ok).To(BeTrue())

			user, ok := hat.ActiveUser()
			Expect(ok).To(BeTrue())
			Expect(user.Ref()).To(Equal(w.Users()[0].ID()))

			ur, ok := hat.ActiveUserRoot()
			Expect(ok).To(BeTrue())
			Expect(ur.Ref()).To(Equal(w.Users()[0].Root().ID()))

			_, ok = root.ActiveUser()
			Expect(ok).To(BeFalse())
		})

		It("finds the object root", func() {
			foot, ok := root.Children().FindByTag("floor", -1)
			Expect(ok).To(BeTrue())
			table, ok := foot.ObjectRoot(true)
			Expect(ok).To(BeTrue())
			name, _ := table.Name()
			Expect(name).To(Equal("Table"))
		})

		It("returns absence for a destroyed slot", func() {
			lamp, ok := root.Children().FindByName("Lamp", false, false, 0)
			Expect(ok).To(BeTrue())
			Expect(w.Root().Children()[1].Destroy()).To(Succeed())

			_, ok = lamp.Name()
			Expect(ok).To(BeFalse())
			_, ok = lamp.Parent()
			Expect(ok).To(BeFalse())
			Expect(lamp.Children().Len()).To(BeZero())

			err := lamp.SetName("x")
			Expect(err).To(MatchError(resonite.ErrUnknown))
		})

		It("looks up components", func() {
			table, ok := root.Children().FindByName("Table", false, false, 0)
			Expect(ok).To(BeTrue())

			c, ok := table.Component("Counter")
			Expect(ok).To(BeTrue())
			typeName, ok := c.TypeName()
			Expect(ok).To(BeTrue())
			Expect(typeName).To(Equal("Counter"))

			_, ok = table.Component("Missing")
			Expect(ok).To(BeFalse())
		})
	})

	When("no host is attached", func() {
		It("has no root", func() {
			_, err := resonite.Root()
			Expect(err).To(MatchError(resonite.ErrNullOrNotFound))
		})

		It("never panics", func() {
			slot, ok := resonite.SlotFromRef(resonite.DefaultHost(), 5)
			Expect(ok).To(BeTrue())
			_, ok = slot.Name()
			Expect(ok).To(BeFalse())
			Expect(slot.SetName("x")).To(MatchError(resonite.ErrNullOrNotFound))
			Expect(slot.Children().Len()).To(BeZero())
			_, ok = slot.Children().FindByName("x", true, true, -1)
			Expect(ok).To(BeFalse())

			c, ok := resonite.ComponentFromRef(resonite.DefaultHost(), 6)
			Expect(ok).To(BeTrue())
			_, err := c.MemberByName("Value")
			Expect(err).To(MatchError(resonite.ErrNullOrNotFound))
		})
	})
})
