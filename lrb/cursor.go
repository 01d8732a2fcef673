package lrb

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// BinaryDeserializer is a little endian cursor over a fully buffered container
type BinaryDeserializer struct {
	buffer   []byte
	position int
	max      int
}

func NewDeserializer(buffer []byte) *BinaryDeserializer {
	return &BinaryDeserializer{
		buffer: buffer,
		max:    len(buffer),
	}
}

// Pos current position in the buffer
func (d *BinaryDeserializer) Pos() int {
	return d.position
}

// Limit is the end of the readable window
func (d *BinaryDeserializer) Limit() int {
	return d.max
}

// Remaining bytes before the limit
func (d *BinaryDeserializer) Remaining() int {
	return d.max - d.position
}

// Seek moves to an absolute position inside the current window
func (d *BinaryDeserializer) Seek(pos int) error {
	if pos < 0 || pos > d.max {
		return fmt.Errorf("seek to %d outside of [0, %d]", pos, d.max)
	}
	d.position = pos
	return nil
}

// window runs fn with reads bounded to [start, end) and restores the position
// and limit afterwards.
func (d *BinaryDeserializer) window(start, end int, fn func() error) error {
	if start < 0 || end < start || end > len(d.buffer) {
		return fmt.Errorf("window [%d, %d) outside of buffer of %d bytes", start, end, len(d.buffer))
	}
	position, limit := d.position, d.max
	defer func() {
		d.position, d.max = position, limit
	}()
	d.position, d.max = start, end
	return fn()
}

func (d *BinaryDeserializer) Read(b []byte) (n int, err error) {
	if d.position >= d.max {
		if len(b) == 0 {
			return 0, nil
		}
		return 0, io.EOF
	}
	n = copy(b, d.buffer[d.position:d.max])
	d.position += n
	return
}

func (d *BinaryDeserializer) ReadByte() (b byte, err error) {
	if d.position >= d.max {
		return 0, io.EOF
	}
	b = d.buffer[d.position]
	d.position += 1
	return
}

func (d *BinaryDeserializer) GetByte() (byte, error) {
	return d.ReadByte()
}

func (d *BinaryDeserializer) GetBytes(size int) (result []byte, err error) {
	result = make([]byte, size)
	_, err = io.ReadFull(d, result)
	return
}

func (d *BinaryDeserializer) GetShort() (result uint16, err error) {
	err = binary.Read(d, binary.LittleEndian, &result)
	return
}

func (d *BinaryDeserializer) GetUInt32() (result uint32, err error) {
	err = binary.Read(d, binary.LittleEndian, &result)
	return
}

func (d *BinaryDeserializer) GetUInt64() (result uint64, err error) {
	err = binary.Read(d, binary.LittleEndian, &result)
	return
}

func (d *BinaryDeserializer) GetFloat64() (result float64, err error) {
	err = binary.Read(d, binary.LittleEndian, &result)
	return
}

// GetString8 reads a string prefixed by a u8 length
func (d *BinaryDeserializer) GetString8() (string, error) {
	size, err := d.GetByte()
	if err != nil {
		return "", err
	}
	b, err := d.GetBytes(int(size))
	return string(b), err
}

// GetString16 reads a string prefixed by a u16 length
func (d *BinaryDeserializer) GetString16() (string, error) {
	size, err := d.GetShort()
	if err != nil {
		return "", err
	}
	b, err := d.GetBytes(int(size))
	return string(b), err
}

// GetVec2 reads two consecutive f64
func (d *BinaryDeserializer) GetVec2() (x, y float64, err error) {
	if x, err = d.GetFloat64(); err != nil {
		return
	}
	y, err = d.GetFloat64()
	return
}

// BinarySerializer is the write side of BinaryDeserializer
type BinarySerializer struct {
	buf bytes.Buffer
}

func NewSerializer() *BinarySerializer {
	return &BinarySerializer{}
}

func (s *BinarySerializer) Len() int {
	return s.buf.Len()
}

func (s *BinarySerializer) Bytes() []byte {
	return s.buf.Bytes()
}

func (s *BinarySerializer) PutByte(b byte) {
	s.buf.WriteByte(b)
}

func (s *BinarySerializer) PutBytes(b []byte) {
	s.buf.Write(b)
}

// put writes a fixed size value; writes to a bytes.Buffer cannot fail
func (s *BinarySerializer) put(v any) {
	_ = binary.Write(&s.buf, binary.LittleEndian, v)
}

func (s *BinarySerializer) PutShort(v uint16) {
	s.put(v)
}

func (s *BinarySerializer) PutUInt32(v uint32) {
	s.put(v)
}

func (s *BinarySerializer) PutUInt64(v uint64) {
	s.put(v)
}

func (s *BinarySerializer) PutFloat64(v float64) {
	s.put(v)
}

func (s *BinarySerializer) PutVec2(x, y float64) {
	s.put(x)
	s.put(y)
}

func (s *BinarySerializer) PutString8(str string) error {
	if len(str) > 0xff {
		return fmt.Errorf("string of %d bytes does not fit a u8 length", len(str))
	}
	s.PutByte(byte(len(str)))
	s.buf.WriteString(str)
	return nil
}

func (s *BinarySerializer) PutString16(str string) error {
	if len(str) > 0xffff {
		return fmt.Errorf("string of %d bytes does not fit a u16 length", len(str))
	}
	s.PutShort(uint16(len(str)))
	s.buf.WriteString(str)
	return nil
}
