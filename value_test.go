package resonite_test

import (
	"github.com/dergwasm/go-resonite"
	"github.com/dergwasm/go-resonite/world"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func member[T resonite.Scalar](c resonite.Component, name string) resonite.Value[T] {
	m, err := c.MemberByName(name)
	Expect(err).To(BeNil())
	v, ok := m.(resonite.Value[T])
	Expect(ok).To(BeTrue())
	return v
}

var _ = Describe("Values", func() {
	When("the host is faked", func() {
		It("returns the value on success", func() {
			host := &fakeHost{intStatus: resonite.StatusSuccess, intValue: 12}
			v, ok := resonite.ValueFromRef(host, resonite.IntValueRef(42))
			Expect(ok).To(BeTrue())

			got, err := v.Get()
			Expect(err).To(BeNil())
			Expect(got).To(Equal(int32(12)))
		})

		It("returns zero and an error on failure", func() {
			host := &fakeHost{intStatus: resonite.StatusInvalidRefID, intValue: 12}
			v, _ := resonite.ValueFromRef(host, resonite.IntValueRef(42))

			got, err := v.Get()
			Expect(err).To(MatchError(resonite.ErrUnknown))
			Expect(got).To(BeZero())

			Expect(v.Set(3)).To(MatchError(resonite.ErrUnknown))
		})

		It("sends values of the right type", func() {
			host := &fakeHost{}
			f, _ := resonite.ValueFromRef(host, resonite.FloatValueRef(1))
			Expect(f.Set(0.5)).To(Succeed())
			Expect(host.lastSet).To(Equal(float32(0.5)))

			d, _ := resonite.ValueFromRef(host, resonite.DoubleValueRef(1))
			Expect(d.Set(0.25)).To(Succeed())
			Expect(host.lastSet).To(Equal(0.25))

			i, _ := resonite.ValueFromRef(host, resonite.IntValueRef(1))
			Expect(i.Set(-4)).To(Succeed())
			Expect(host.lastSet).To(Equal(int32(-4)))
		})
	})

	When("the host is a world", func() {
		var (
			w       *world.World
			counter resonite.Component
		)

		BeforeEach(func() {
			var err error
			w, err = world.LoadFixtureFile("world/testdata/world.yaml")
			Expect(err).To(BeNil())
			root, err := resonite.RootSlot(w.Host())
			Expect(err).To(BeNil())
			table, ok := root.Children().FindByName("Table", false, false, 0)
			Expect(ok).To(BeTrue())
			counter, ok = table.Component("Counter")
			Expect(ok).To(BeTrue())
		})

		It("reads and writes ints", func() {
			count := member[int32](counter, "Count")
			got, err := count.Get()
			Expect(err).To(BeNil())
			Expect(got).To(Equal(int32(3)))

			Expect(count.Set(got + 1)).To(Succeed())
			got, err = count.Get()
			Expect(err).To(BeNil())
			Expect(got).To(Equal(int32(4)))

			Expect(w.Root().Children()[0].Components()[0].Member("Count").Int()).To(Equal(int32(4)))
		})

		It("reads and writes floats and doubles", func() {
			scale := member[float32](counter, "Scale")
			Expect(scale.Set(2.5)).To(Succeed())
			f, err := scale.Get()
			Expect(err).To(BeNil())
			Expect(f).To(Equal(float32(2.5)))

			precise := member[float64](counter, "Precise")
			d, err := precise.Get()
			Expect(err).To(BeNil())
			Expect(d).To(Equal(2.25))
		})

		It("fails once the slot is destroyed", func() {
			count := member[int32](counter, "Count")
			Expect(w.Root().Children()[0].Destroy()).To(Succeed())

			_, err := count.Get()
			Expect(err).To(MatchError(resonite.ErrUnknown))
			Expect(count.Set(1)).To(MatchError(resonite.ErrUnknown))
		})
	})
})
