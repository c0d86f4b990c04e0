package provider

import (
	"fmt"

	"github.com/mimesis-go/mimesis/internal/generator/usecase/general/generator/random"
)

// Verify interface compliance in compile time.
var _ NamedProvider = (*Hardware)(nil)

// Hardware type is used to generate computer and phone specifications.
type Hardware struct {
	BaseProvider
}

// NewHardware creates Hardware provider.
func NewHardware(rnd *random.Random) *Hardware {
	return &Hardware{BaseProvider: newBaseProvider(rnd)}
}

// Name returns name of hardware provider.
func (p *Hardware) Name() string {
	return HardwareName
}

// CPU returns random CPU model.
func (p *Hardware) CPU() string {
	return random.MustChoice(p.random, cpus)
}

// CPUFrequency returns frequency in gigahertz, e.g. "3.4GHz".
func (p *Hardware) CPUFrequency() string {
	return fmt.Sprintf("%.1fGHz", p.random.Float(1.5, 4.3, 1))
}

// Generation returns generation of CPU.
func (p *Hardware) Generation() string {
	return random.MustChoice(p.random, cpuGenerations)
}

// Resolution returns random screen resolution.
func (p *Hardware) Resolution() string {
	return random.MustChoice(p.random, resolutions)
}

// ScreenSize returns random screen size in inches.
func (p *Hardware) ScreenSize() string {
	return random.MustChoice(p.random, screenSizes)
}

// RAMType returns random RAM type.
func (p *Hardware) RAMType() string {
	return random.MustChoice(p.random, ramTypes)
}

// RAMSize returns random RAM size.
func (p *Hardware) RAMSize() string {
	return random.MustChoice(p.random, ramSizes)
}

// SSDOrHDD returns random storage device.
func (p *Hardware) SSDOrHDD() string {
	return random.MustChoice(p.random, storageDevices)
}

// GraphicsCard returns random graphics card model.
func (p *Hardware) GraphicsCard() string {
	return random.MustChoice(p.random, graphicsCards)
}

// Manufacturer returns random computer manufacturer.
func (p *Hardware) Manufacturer() string {
	return random.MustChoice(p.random, manufacturers)
}

// PhoneModel returns random phone model.
func (p *Hardware) PhoneModel() string {
	return random.MustChoice(p.random, phoneModels)
}
