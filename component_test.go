package resonite_test

import (
	"errors"

	"github.com/dergwasm/go-resonite"
	"github.com/dergwasm/go-resonite/world"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Component members", func() {
	When("the host is faked", func() {
		var (
			host      *fakeHost
			component resonite.Component
		)

		BeforeEach(func() {
			host = &fakeHost{}
			var ok bool
			component, ok = resonite.ComponentFromRef(host, 3)
			Expect(ok).To(BeTrue())
		})

		It("returns an int value for type code 0x1", func() {
			host.memberStatus = resonite.StatusSuccess
			host.memberType = resonite.MemberTypeValueInt
			host.memberRef = 42

			m, err := component.MemberByName("Value")
			Expect(err).To(BeNil())
			v, ok := m.(resonite.Value[int32])
			Expect(ok).To(BeTrue())
			Expect(v.Ref()).To(Equal(resonite.IntValueRef(42)))
		})

		It("returns float and double values", func() {
			host.memberType = resonite.MemberTypeValueFloat
			host.memberRef = 5
			m, err := component.MemberByName("Value")
			Expect(err).To(BeNil())
			Expect(m).To(BeAssignableToTypeOf(resonite.Value[float32]{}))

			host.memberType = resonite.MemberTypeValueDouble
			m, err = component.MemberByName("Value")
			Expect(err).To(BeNil())
			Expect(m).To(BeAssignableToTypeOf(resonite.Value[float64]{}))
			Expect(m.String()).To(Equal("Value[float64](0x5)"))
		})

		It("reports an unknown type code", func() {
			host.memberType = 0x7
			host.memberRef = 42

			m, err := component.MemberByName("Value")
			Expect(m).To(BeNil())
			Expect(err).To(MatchError(resonite.ErrUnknown))

			var rerr *resonite.Error
			Expect(errors.As(err, &rerr)).To(BeTrue())
			Expect(rerr.TypeCode).To(Equal(int32(0x7)))
			Expect(rerr.Error()).To(Equal("resonite: Unknown (type code 0x7)"))
		})

		It("translates a failed lookup", func() {
			host.memberStatus = resonite.StatusNullOrNotFound
			host.memberType = resonite.MemberTypeValueInt
			host.memberRef = 42

			m, err := component.MemberByName("Missing")
			Expect(m).To(BeNil())
			Expect(err).To(MatchError(resonite.ErrNullOrNotFound))
		})

		It("panics on a name with a NUL byte", func() {
			Expect(func() { _, _ = component.MemberByName("\x00") }).To(Panic())
		})
	})

	When("the host is a world", func() {
		var component resonite.Component

		BeforeEach(func() {
			w, err := world.LoadFixtureFile("world/testdata/world.yaml")
			Expect(err).To(BeNil())
			root, err := resonite.RootSlot(w.Host())
			Expect(err).To(BeNil())
			table, ok := root.Children().FindByName("Table", false, false, 0)
			Expect(ok).To(BeTrue())
			component, ok = table.Component("Counter")
			Expect(ok).To(BeTrue())
		})

		It("resolves every member type", func() {
			m, err := component.MemberByName("Count")
			Expect(err).To(BeNil())
			Expect(m).To(BeAssignableToTypeOf(resonite.Value[int32]{}))

			m, err = component.MemberByName("Scale")
			Expect(err).To(BeNil())
			Expect(m).To(BeAssignableToTypeOf(resonite.Value[float32]{}))

			m, err = component.MemberByName("Precise")
			Expect(err).To(BeNil())
			Expect(m).To(BeAssignableToTypeOf(resonite.Value[float64]{}))
		})

		It("reports a reference member as unknown", func() {
			_, err := component.MemberByName("Target")
			Expect(err).To(MatchError(resonite.ErrUnknown))
		})

		It("reports a missing member", func() {
			_, err := component.MemberByName("Nope")
			Expect(err).To(MatchError(resonite.ErrNullOrNotFound))
		})
	})
})
