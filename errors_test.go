package resonite_test

import (
	"errors"
	"math"

	"github.com/dergwasm/go-resonite"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Status codes", func() {
	DescribeTable("map to kinds",
		func(code int32, kind resonite.Kind) {
			Expect(resonite.KindOf(code)).To(Equal(kind))
		},
		Entry("success", int32(0), resonite.KindSuccess),
		Entry("null or not found", int32(-1), resonite.KindNullOrNotFound),
		Entry("invalid ref", int32(-2), resonite.KindUnknown),
		Entry("failed precondition", int32(-3), resonite.KindUnknown),
		Entry("positive", int32(1), resonite.KindUnknown),
		Entry("min", int32(math.MinInt32), resonite.KindUnknown),
		Entry("max", int32(math.MaxInt32), resonite.KindUnknown),
	)

	It("is nil on success", func() {
		Expect(resonite.Result(0)).To(BeNil())
	})

	It("matches the sentinel of its kind", func() {
		err := resonite.Result(-1)
		Expect(errors.Is(err, resonite.ErrNullOrNotFound)).To(BeTrue())
		Expect(errors.Is(err, resonite.ErrUnknown)).To(BeFalse())

		err = resonite.Result(-2)
		Expect(errors.Is(err, resonite.ErrUnknown)).To(BeTrue())
		Expect(errors.Is(err, resonite.ErrNullOrNotFound)).To(BeFalse())
	})

	It("keeps the raw code", func() {
		var rerr *resonite.Error
		Expect(errors.As(resonite.Result(-3), &rerr)).To(BeTrue())
		Expect(rerr.Kind).To(Equal(resonite.KindUnknown))
		Expect(rerr.Code).To(Equal(int32(-3)))
		Expect(rerr.Error()).To(Equal("resonite: Unknown (status -3)"))
	})

	It("prints the kind names", func() {
		Expect(resonite.KindSuccess.String()).To(Equal("Success"))
		Expect(resonite.KindNullOrNotFound.String()).To(Equal("NullOrNotFound"))
		Expect(resonite.KindUnknown.String()).To(Equal("Unknown"))
	})
})
