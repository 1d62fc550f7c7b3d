package cpu_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestCpu(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Cpu Suite")
}
