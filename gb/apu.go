package gb

import "fmt"

// SampleRate is the rate of the samples the APU emits.
const SampleRate = 44100

// frameSequencerPeriod is 512Hz in T-cycles.
const frameSequencerPeriod = CPUFrequency / 512

// AudioSink receives every stereo sample, for example to record it.
type AudioSink interface {
	AddSample(left, right float32)
}

// Register read masks, the bits that always read as 1.
// Reference: https://gbdev.io/pandocs/Audio_Registers.html
var apuReadMasks = [0x17]byte{
	0x80, 0x3F, 0x00, 0xFF, 0xBF, // NR10-NR14
	0xFF, 0x3F, 0x00, 0xFF, 0xBF, // unused, NR21-NR24
	0x7F, 0xFF, 0x9F, 0xFF, 0xBF, // NR30-NR34
	0xFF, 0xFF, 0x00, 0x00, 0xBF, // unused, NR41-NR44
	0x00, 0x00, 0x70,             // NR50-NR52
}

var dutyPatterns = [4][8]byte{
	{0, 0, 0, 0, 0, 0, 0, 1}, // 12.5%
	{1, 0, 0, 0, 0, 0, 0, 1}, // 25%
	{1, 0, 0, 0, 0, 1, 1, 1}, // 50%
	{0, 1, 1, 1, 1, 1, 1, 0}, // 75%
}

// APU generates the sound of the four channels.
// References:
//   https://gbdev.io/pandocs/Audio.html
//   https://gbdev.gg8.se/wiki/articles/Gameboy_sound_hardware
type APU struct {
	square1 square
	square2 square
	wave    wave
	noise   noise

	// Raw register values for reads, 0xFF10-0xFF26.
	registers [0x17]byte
	waveRAM   [16]byte
	nr50      byte
	nr51      byte
	power     bool

	sequencerCycles int
	sequencerStep   int
	sampleCycles    int

	out  chan float32
	sink AudioSink
}

func NewAPU() *APU {
	a := &APU{}
	a.Reset()
	return a
}

func (a *APU) Reset() {
	*a = APU{out: a.out, sink: a.sink}
	a.noise.lfsr = 0x7FFF
}

// SetAudioOut sets the channel receiving interleaved left and right samples.
// Samples are dropped when the channel is full.
func (a *APU) SetAudioOut(c chan float32) {
	a.out = c
}

// SetAudioSink sets a sink receiving every sample.
func (a *APU) SetAudioSink(s AudioSink) {
	a.sink = s
}

// skipBoot sets the registers the boot ROM leaves behind.
func (a *APU) skipBoot() {
	a.write(0xFF26, 0x80)
	a.write(0xFF24, 0x77)
	a.write(0xFF25, 0xF3)
}

// Advance runs the APU for cycles T-cycles.
func (a *APU) Advance(cycles int) {
	for i := 0; i < cycles; i++ {
		if a.power {
			a.square1.tick()
			a.square2.tick()
			a.wave.tick()
			a.noise.tick()
			a.sequencerCycles++
			if a.sequencerCycles == frameSequencerPeriod {
				a.sequencerCycles = 0
				a.stepSequencer()
			}
		}
		a.sampleCycles += SampleRate
		if a.sampleCycles >= CPUFrequency {
			a.sampleCycles -= CPUFrequency
			a.emit()
		}
	}
}

// stepSequencer clocks length counters at 256Hz, the sweep at 128Hz and the
// envelopes at 64Hz.
func (a *APU) stepSequencer() {
	switch a.sequencerStep {
	case 0, 4:
		a.clockLength()
	case 2, 6:
		a.clockLength()
		a.square1.clockSweep()
	case 7:
		a.square1.envelope.clock()
		a.square2.envelope.clock()
		a.noise.envelope.clock()
	}
	a.sequencerStep = (a.sequencerStep + 1) % 8
}

func (a *APU) clockLength() {
	a.square1.length.clock(&a.square1.enabled)
	a.square2.length.clock(&a.square2.enabled)
	a.wave.length.clock(&a.wave.enabled)
	a.noise.length.clock(&a.noise.enabled)
}

// mix returns the stereo output in [-1, 1].
func (a *APU) mix() (float32, float32) {
	if !a.power {
		return 0, 0
	}
	outputs := [4]float32{
		a.square1.output(),
		a.square2.output(),
		a.wave.output(&a.waveRAM),
		a.noise.output(),
	}
	var left, right float32
	for i, v := range outputs {
		if a.nr51&(1<<(i+4)) != 0 {
			left += v
		}
		if a.nr51&(1<<i) != 0 {
			right += v
		}
	}
	leftVolume := float32((a.nr50>>4)&0x07+1) / 8
	rightVolume := float32(a.nr50&0x07+1) / 8
	return left / 4 * leftVolume, right / 4 * rightVolume
}

func (a *APU) emit() {
	l, r := a.mix()
	if a.sink != nil {
		a.sink.AddSample(l, r)
	}
	if a.out == nil {
		return
	}
	select {
	case a.out <- l:
	default:
	}
	select {
	case a.out <- r:
	default:
	}
}

func (a *APU) read(address uint16) byte {
	switch {
	case 0xFF30 <= address && address < 0xFF40:
		return a.waveRAM[address-0xFF30]
	case address == 0xFF26:
		x := byte(0x70)
		if a.power {
			x |= 0x80
		}
		for i, on := range []bool{a.square1.enabled, a.square2.enabled, a.wave.enabled, a.noise.enabled} {
			if on {
				x |= 1 << i
			}
		}
		return x
	case address < 0xFF27:
		i := address - 0xFF10
		return a.registers[i] | apuReadMasks[i]
	}
	return 0xFF
}

func (a *APU) write(address uint16, data byte) {
	if 0xFF30 <= address && address < 0xFF40 {
		a.waveRAM[address-0xFF30] = data
		return
	}
	if address >= 0xFF27 {
		return
	}
	if address == 0xFF26 {
		a.writePower(data&0x80 != 0)
		return
	}
	// Registers are read only while the APU is off.
	if !a.power {
		return
	}
	a.registers[address-0xFF10] = data
	switch address {
	case 0xFF10:
		a.square1.writeSweep(data)
	case 0xFF11:
		a.square1.writeDutyLength(data)
	case 0xFF12:
		a.square1.writeEnvelope(data)
	case 0xFF13:
		a.square1.writeFrequencyLow(data)
	case 0xFF14:
		a.square1.writeFrequencyHigh(data)
	case 0xFF16:
		a.square2.writeDutyLength(data)
	case 0xFF17:
		a.square2.writeEnvelope(data)
	case 0xFF18:
		a.square2.writeFrequencyLow(data)
	case 0xFF19:
		a.square2.writeFrequencyHigh(data)
	case 0xFF1A:
		a.wave.writeDAC(data)
	case 0xFF1B:
		a.wave.length.load(256 - int(data))
	case 0xFF1C:
		a.wave.volumeCode = (data >> 5) & 0x03
	case 0xFF1D:
		a.wave.frequency = a.wave.frequency&0x0700 | uint16(data)
	case 0xFF1E:
		a.wave.writeFrequencyHigh(data)
	case 0xFF20:
		a.noise.length.load(64 - int(data&0x3F))
	case 0xFF21:
		a.noise.writeEnvelope(data)
	case 0xFF22:
		a.noise.polynomial = data
	case 0xFF23:
		a.noise.writeControl(data)
	case 0xFF24:
		a.nr50 = data
	case 0xFF25:
		a.nr51 = data
	}
}

func (a *APU) writePower(on bool) {
	if a.power == on {
		return
	}
	if !on {
		// Powering off clears every register but keeps wave RAM.
		waveRAM := a.waveRAM
		out, sink := a.out, a.sink
		*a = APU{out: out, sink: sink, waveRAM: waveRAM}
		a.noise.lfsr = 0x7FFF
		return
	}
	a.power = true
	a.sequencerStep = 0
	a.sequencerCycles = 0
}

func (a *APU) String() string {
	return fmt.Sprintf("power=%t, NR50=0x%02x, NR51=0x%02x, ch1=%t, ch2=%t, ch3=%t, ch4=%t",
		a.power, a.nr50, a.nr51, a.square1.enabled, a.square2.enabled, a.wave.enabled, a.noise.enabled)
}

// lengthCounter silences a channel after a number of 256Hz ticks.
type lengthCounter struct {
	counter int
	enabled bool
	max     int
}

func (l *lengthCounter) load(n int) {
	l.counter = n
}

func (l *lengthCounter) trigger() {
	if l.counter == 0 {
		l.counter = l.max
	}
}

func (l *lengthCounter) clock(channelEnabled *bool) {
	if !l.enabled || l.counter == 0 {
		return
	}
	l.counter--
	if l.counter == 0 {
		*channelEnabled = false
	}
}

// envelope changes the volume at 64Hz.
type envelope struct {
	initial byte
	up      bool
	period  byte
	timer   byte
	volume  byte
}

func (e *envelope) write(data byte) {
	e.initial = data >> 4
	e.up = data&0x08 != 0
	e.period = data & 0x07
}

// dacEnabled reports whether the upper 5 bits of NRx2 are non zero.
func (e *envelope) dacEnabled() bool {
	return e.initial != 0 || e.up
}

func (e *envelope) trigger() {
	e.volume = e.initial
	e.timer = e.period
}

func (e *envelope) clock() {
	if e.period == 0 {
		return
	}
	if e.timer > 0 {
		e.timer--
	}
	if e.timer != 0 {
		return
	}
	e.timer = e.period
	if e.up && e.volume < 15 {
		e.volume++
	} else if !e.up && e.volume > 0 {
		e.volume--
	}
}

// dac converts a digital 0-15 level to [-1, 1].
func dac(level byte) float32 {
	return float32(level)/7.5 - 1
}

// square is channel 1 (with sweep) or channel 2.
type square struct {
	enabled   bool
	duty      byte
	dutyStep  int
	frequency uint16
	timer     int
	length    lengthCounter
	envelope  envelope

	sweepPeriod  byte
	sweepNegate  bool
	sweepShift   byte
	sweepTimer   byte
	sweepShadow  uint16
	sweepEnabled bool
}

func (s *square) tick() {
	s.timer--
	if s.timer <= 0 {
		s.timer = (2048 - int(s.frequency)) * 4
		s.dutyStep = (s.dutyStep + 1) % 8
	}
}

func (s *square) output() float32 {
	if !s.enabled || !s.envelope.dacEnabled() {
		return 0
	}
	return dac(dutyPatterns[s.duty][s.dutyStep] * s.envelope.volume)
}

func (s *square) writeSweep(data byte) {
	s.sweepPeriod = (data >> 4) & 0x07
	s.sweepNegate = data&0x08 != 0
	s.sweepShift = data & 0x07
}

func (s *square) writeDutyLength(data byte) {
	s.duty = data >> 6
	s.length.max = 64
	s.length.load(64 - int(data&0x3F))
}

func (s *square) writeEnvelope(data byte) {
	s.envelope.write(data)
	if !s.envelope.dacEnabled() {
		s.enabled = false
	}
}

func (s *square) writeFrequencyLow(data byte) {
	s.frequency = s.frequency&0x0700 | uint16(data)
}

func (s *square) writeFrequencyHigh(data byte) {
	s.frequency = s.frequency&0x00FF | uint16(data&0x07)<<8
	s.length.enabled = data&0x40 != 0
	if data&0x80 != 0 {
		s.trigger()
	}
}

func (s *square) trigger() {
	s.enabled = s.envelope.dacEnabled()
	s.length.max = 64
	s.length.trigger()
	s.timer = (2048 - int(s.frequency)) * 4
	s.envelope.trigger()

	s.sweepShadow = s.frequency
	s.sweepTimer = s.sweepPeriod
	if s.sweepTimer == 0 {
		s.sweepTimer = 8
	}
	s.sweepEnabled = s.sweepPeriod != 0 || s.sweepShift != 0
	if s.sweepShift != 0 {
		s.sweepFrequency()
	}
}

// sweepFrequency computes the next frequency, overflowing 2047 silences the
// channel.
func (s *square) sweepFrequency() uint16 {
	delta := s.sweepShadow >> s.sweepShift
	next := s.sweepShadow + delta
	if s.sweepNegate {
		next = s.sweepShadow - delta
	}
	if next > 2047 {
		s.enabled = false
	}
	return next
}

func (s *square) clockSweep() {
	if s.sweepTimer > 0 {
		s.sweepTimer--
	}
	if s.sweepTimer != 0 {
		return
	}
	s.sweepTimer = s.sweepPeriod
	if s.sweepTimer == 0 {
		s.sweepTimer = 8
	}
	if !s.sweepEnabled || s.sweepPeriod == 0 {
		return
	}
	next := s.sweepFrequency()
	if next <= 2047 && s.sweepShift != 0 {
		s.frequency = next
		s.sweepShadow = next
		s.sweepFrequency()
	}
}

// wave is channel 3, it plays 32 4-bit samples from wave RAM.
type wave struct {
	enabled    bool
	dacOn      bool
	volumeCode byte
	frequency  uint16
	timer      int
	position   int
	length     lengthCounter
}

var waveShifts = [4]byte{4, 0, 1, 2}

func (w *wave) tick() {
	w.timer--
	if w.timer <= 0 {
		w.timer = (2048 - int(w.frequency)) * 2
		w.position = (w.position + 1) % 32
	}
}

func (w *wave) output(ram *[16]byte) float32 {
	if !w.enabled || !w.dacOn {
		return 0
	}
	sample := ram[w.position/2]
	if w.position%2 == 0 {
		sample >>= 4
	}
	sample &= 0x0F
	return dac(sample >> waveShifts[w.volumeCode])
}

func (w *wave) writeDAC(data byte) {
	w.dacOn = data&0x80 != 0
	if !w.dacOn {
		w.enabled = false
	}
}

func (w *wave) writeFrequencyHigh(data byte) {
	w.frequency = w.frequency&0x00FF | uint16(data&0x07)<<8
	w.length.enabled = data&0x40 != 0
	if data&0x80 != 0 {
		w.enabled = w.dacOn
		w.length.max = 256
		w.length.trigger()
		w.timer = (2048 - int(w.frequency)) * 2
		w.position = 0
	}
}

// noise is channel 4, a linear feedback shift register.
type noise struct {
	enabled    bool
	polynomial byte
	lfsr       uint16
	timer      int
	length     lengthCounter
	envelope   envelope
}

var noiseDivisors = [8]int{8, 16, 32, 48, 64, 80, 96, 112}

func (n *noise) period() int {
	return noiseDivisors[n.polynomial&0x07] << (n.polynomial >> 4)
}

func (n *noise) tick() {
	n.timer--
	if n.timer > 0 {
		return
	}
	n.timer = n.period()
	x := (n.lfsr & 1) ^ ((n.lfsr >> 1) & 1)
	n.lfsr = n.lfsr>>1 | x<<14
	// 7-bit mode also feeds bit 6.
	if n.polynomial&0x08 != 0 {
		n.lfsr = n.lfsr&^(1<<6) | x<<6
	}
}

func (n *noise) output() float32 {
	if !n.enabled || !n.envelope.dacEnabled() {
		return 0
	}
	if n.lfsr&1 != 0 {
		return dac(0)
	}
	return dac(n.envelope.volume)
}

func (n *noise) writeEnvelope(data byte) {
	n.envelope.write(data)
	if !n.envelope.dacEnabled() {
		n.enabled = false
	}
}

func (n *noise) writeControl(data byte) {
	n.length.enabled = data&0x40 != 0
	if data&0x80 != 0 {
		n.enabled = n.envelope.dacEnabled()
		n.length.max = 64
		n.length.trigger()
		n.timer = n.period()
		n.envelope.trigger()
		n.lfsr = 0x7FFF
	}
}
