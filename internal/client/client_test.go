package client_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/4kternos/fitting-room/api/v1alpha1"
	"github.com/4kternos/fitting-room/internal/client"
	"github.com/4kternos/fitting-room/pkg/requestid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("fitting room client", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("CreateRecommendation", func() {
		It("successfully posts the measurements", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				defer GinkgoRecover()
				Expect(r.Method).To(Equal(http.MethodPost))
				Expect(r.URL.Path).To(Equal("/api/v1/recommendations"))
				Expect(r.Header.Get("Content-Type")).To(Equal("application/json"))
				Expect(r.Header.Get(requestid.Header)).To(Equal("req-42"))

				var m v1alpha1.Measurements
				Expect(json.NewDecoder(r.Body).Decode(&m)).To(Succeed())
				Expect(m.Weight).To(Equal(90.0))
				Expect(m.ChestAdjust).To(Equal(3))

				w.Header().Set("Content-Type", "application/json")
				_ = json.NewEncoder(w).Encode(v1alpha1.Recommendation{Jacket: 56, Trousers: 50, Summary: "summary"})
			}))
			defer server.Close()

			c := client.NewClient(server.URL+"/", 5*time.Second)
			rec, err := c.CreateRecommendation(requestid.ToContext(ctx, "req-42"), v1alpha1.Measurements{Height: 180, Weight: 90, Age: 35, ChestAdjust: 3})
			Expect(err).To(BeNil())
			Expect(rec.Jacket).To(Equal(56))
			Expect(rec.Trousers).To(Equal(50))
		})

		It("returns an APIError with the service message", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(v1alpha1.Error{Message: "weight must be between 40 and 200", RequestId: "abc"})
			}))
			defer server.Close()

			_, err := client.NewClient(server.URL, 0).CreateRecommendation(ctx, v1alpha1.Measurements{Weight: 10})
			Expect(err).ToNot(BeNil())

			var apiErr *client.APIError
			Expect(errors.As(err, &apiErr)).To(BeTrue())
			Expect(apiErr.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(apiErr.Message).To(Equal("weight must be between 40 and 200"))
			Expect(apiErr.RequestID).To(Equal("abc"))
			Expect(err.Error()).To(ContainSubstring("request abc"))
		})

		It("keeps a plain text error body", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "upstream down", http.StatusBadGateway)
			}))
			defer server.Close()

			_, err := client.NewClient(server.URL, 0).CreateRecommendation(ctx, v1alpha1.Measurements{})
			var apiErr *client.APIError
			Expect(errors.As(err, &apiErr)).To(BeTrue())
			Expect(apiErr.Message).To(Equal("upstream down"))
		})

		It("fails on an undecodable response", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json"))
			}))
			defer server.Close()

			_, err := client.NewClient(server.URL, 0).CreateRecommendation(ctx, v1alpha1.Measurements{})
			Expect(err).To(MatchError(ContainSubstring("failed to decode response")))
		})
	})

	Describe("GetSizeChart", func() {
		It("successfully reads the chart", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				defer GinkgoRecover()
				Expect(r.Method).To(Equal(http.MethodGet))
				Expect(r.URL.Path).To(Equal("/api/v1/size-chart"))
				_ = json.NewEncoder(w).Encode(v1alpha1.SizeChart{BaseSize: 46, TrouserDrop: 6, Bands: []v1alpha1.SizeBand{{MinWeight: 115, Size: 60}}})
			}))
			defer server.Close()

			chart, err := client.NewClient(server.URL, 0).GetSizeChart(ctx)
			Expect(err).To(BeNil())
			Expect(chart.BaseSize).To(Equal(46))
			Expect(chart.Bands).To(HaveLen(1))
		})
	})

	Describe("GetInfo", func() {
		It("successfully reads the version", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_ = json.NewEncoder(w).Encode(v1alpha1.Info{VersionName: "v1.2.3", GitCommit: "abc"})
			}))
			defer server.Close()

			info, err := client.NewClient(server.URL, 0).GetInfo(ctx)
			Expect(err).To(BeNil())
			Expect(info.VersionName).To(Equal("v1.2.3"))
		})
	})

	Describe("HealthCheck", func() {
		It("fails when the service is unreachable", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
			url := server.URL
			server.Close()

			err := client.NewClient(url, time.Second).HealthCheck(ctx)
			Expect(err).To(MatchError(ContainSubstring("failed to call fitting room service")))
		})
	})
})
