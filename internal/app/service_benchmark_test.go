package app

import (
	"testing"

	"github.com/awmpietro/prereq-inference-case/internal/gate"
	"github.com/awmpietro/prereq-inference-case/internal/requirement"
	"github.com/awmpietro/prereq-inference-case/internal/requirement/cache"
)

const benchRequirement = "(MATE3063 O MATE3185) Y MATE3020 Y BIOL{12}"

func benchStudent() *requirement.StudentRecord {
	return &requirement.StudentRecord{
		Courses: []requirement.CompletedCourse{
			{Code: "MATE3185", Credits: 3},
			{Code: "MATE3020", Credits: 4},
			{Code: "BIOL3011", Credits: 4},
			{Code: "BIOL3013", Credits: 4},
			{Code: "BIOL4015", Credits: 4},
		},
		Year: 3,
	}
}

func benchmarkService(b *testing.B) *Service {
	g, err := gate.New("")
	if err != nil {
		b.Fatal(err)
	}
	return NewService(requirement.NewParser(), requirement.NewEvaluator(), cache.NewInMemory(1024), g)
}

func BenchmarkServiceCheckCached(b *testing.B) {
	svc := benchmarkService(b)

	if _, err := svc.Check(benchRequirement, benchStudent()); err != nil {
		b.Fatalf("warmup check failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := svc.Check(benchRequirement, benchStudent()); err != nil {
			b.Fatalf("check failed: %v", err)
		}
	}
}

func BenchmarkServiceCheckCachedParallel(b *testing.B) {
	svc := benchmarkService(b)

	if _, err := svc.Check(benchRequirement, benchStudent()); err != nil {
		b.Fatalf("warmup check failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.Check(benchRequirement, benchStudent()); err != nil {
				b.Fatalf("check failed: %v", err)
			}
		}
	})
}
