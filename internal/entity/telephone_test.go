package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	name string
	log  *[]string
}

func (o *recordingObserver) Notify(number PhoneNumber) {
	*o.log = append(*o.log, o.name+":"+string(number))
}

func TestRegistry_Add(t *testing.T) {
	tests := []struct {
		name    string
		adds    []string
		want    []PhoneNumber
		wantEnd Status
	}{
		{
			name:    "single number",
			adds:    []string{"123"},
			want:    []PhoneNumber{"123"},
			wantEnd: StatusAdded,
		},
		{
			name:    "duplicate number",
			adds:    []string{"123", "123"},
			want:    []PhoneNumber{"123"},
			wantEnd: StatusAlreadyExists,
		},
		{
			name:    "keeps insertion order",
			adds:    []string{"456", "123", "789"},
			want:    []PhoneNumber{"456", "123", "789"},
			wantEnd: StatusAdded,
		},
		{
			name:    "empty string is a number too",
			adds:    []string{""},
			want:    []PhoneNumber{""},
			wantEnd: StatusAdded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			var status Status
			for _, n := range tt.adds {
				status = r.Add(PhoneNumber(n))
			}
			assert.Equal(t, tt.wantEnd, status)
			assert.Equal(t, tt.want, r.Numbers())
		})
	}
}

func TestRegistry_Remove(t *testing.T) {
	r := NewRegistry()
	r.Add("1")
	r.Add("2")
	r.Add("3")

	before := r.Numbers()
	assert.Equal(t, StatusNotFound, r.Remove("4"))
	assert.Equal(t, before, r.Numbers())

	assert.Equal(t, StatusRemoved, r.Remove("2"))
	assert.Equal(t, []PhoneNumber{"1", "3"}, r.Numbers())
	assert.False(t, r.Contains("2"))

	assert.Equal(t, StatusNotFound, r.Remove("2"))
	assert.Equal(t, 2, r.Len())
}

func TestRegistry_NumbersIsCopy(t *testing.T) {
	r := NewRegistry()
	r.Add("1")
	numbers := r.Numbers()
	numbers[0] = "changed"
	assert.True(t, r.Contains("1"))
}

func TestNotifier_NotifyAllInOrder(t *testing.T) {
	var log []string
	a := &recordingObserver{name: "a", log: &log}
	b := &recordingObserver{name: "b", log: &log}

	n := NewNotifier()
	n.AddObserver(a)
	n.AddObserver(b)
	n.AddObserver(a)

	sent := n.NotifyAll("555")
	assert.Equal(t, 3, sent)
	assert.Equal(t, []string{"a:555", "b:555", "a:555"}, log)
}

func TestNotifier_RemoveObserver(t *testing.T) {
	var log []string
	a := &recordingObserver{name: "a", log: &log}
	b := &recordingObserver{name: "b", log: &log}
	twin := &recordingObserver{name: "a", log: &log}

	n := NewNotifier()
	n.AddObserver(a)
	n.AddObserver(b)
	n.AddObserver(a)

	// Equal value, different identity.
	assert.Equal(t, StatusNotFound, n.RemoveObserver(twin))
	assert.Equal(t, 3, n.Len())

	assert.Equal(t, StatusRemoved, n.RemoveObserver(a))
	n.NotifyAll("1")
	assert.Equal(t, []string{"b:1", "a:1"}, log)

	assert.Equal(t, StatusRemoved, n.RemoveObserver(a))
	assert.Equal(t, StatusNotFound, n.RemoveObserver(a))
	assert.Equal(t, 1, n.Len())
}

func TestNotifier_Empty(t *testing.T) {
	n := NewNotifier()
	assert.Equal(t, 0, n.NotifyAll("1"))
	assert.Equal(t, StatusNotFound, n.RemoveObserver(&recordingObserver{}))
}

func TestTelephone_DialUnknownNumber(t *testing.T) {
	var log []string
	phone := NewTelephone()
	phone.AddObserver(&recordingObserver{name: "a", log: &log})

	result := phone.DialPhoneNumber("000")
	assert.Equal(t, DialResult{Status: StatusNotFound}, result)
	assert.Empty(t, log)
}

func TestTelephone_DialWithoutObservers(t *testing.T) {
	phone := NewTelephone()
	require.Equal(t, StatusAdded, phone.AddPhoneNumber("1"))
	assert.Equal(t, DialResult{Status: StatusDialed, NotifiesSent: 0}, phone.DialPhoneNumber("1"))
}

func TestTelephone_Scenario(t *testing.T) {
	var log []string
	a := &recordingObserver{name: "a", log: &log}
	b := &recordingObserver{name: "b", log: &log}
	phone := NewTelephone()

	require.Equal(t, StatusAdded, phone.AddPhoneNumber("123"))
	require.Equal(t, StatusAlreadyExists, phone.AddPhoneNumber("123"))
	assert.Equal(t, []PhoneNumber{"123"}, phone.PhoneNumbers())

	require.Equal(t, StatusAdded, phone.AddPhoneNumber("456"))
	assert.Equal(t, []PhoneNumber{"123", "456"}, phone.PhoneNumbers())

	phone.AddObserver(a)
	phone.AddObserver(b)
	assert.Equal(t, 2, phone.ObserversCount())

	result := phone.DialPhoneNumber("123")
	assert.Equal(t, DialResult{Status: StatusDialed, NotifiesSent: 2}, result)
	assert.Equal(t, []string{"a:123", "b:123"}, log)

	require.Equal(t, StatusRemoved, phone.RemoveObserver(a))
	log = log[:0]
	result = phone.DialPhoneNumber("456")
	assert.Equal(t, DialResult{Status: StatusDialed, NotifiesSent: 1}, result)
	assert.Equal(t, []string{"b:456"}, log)

	require.Equal(t, StatusRemoved, phone.RemovePhoneNumber("123"))
	assert.Equal(t, []PhoneNumber{"456"}, phone.PhoneNumbers())

	log = log[:0]
	assert.Equal(t, DialResult{Status: StatusNotFound}, phone.DialPhoneNumber("123"))
	assert.Empty(t, log)

	assert.Equal(t, StatusNotFound, phone.RemovePhoneNumber("123"))
	assert.Equal(t, StatusNotFound, phone.RemoveObserver(a))
}

type reentrantObserver struct {
	phone *Telephone
	seen  []PhoneNumber
}

func (o *reentrantObserver) Notify(number PhoneNumber) {
	o.seen = append(o.seen, number)
	o.phone.RemovePhoneNumber(string(number))
}

func TestTelephone_ObserverMayCallBack(t *testing.T) {
	phone := NewTelephone()
	observer := &reentrantObserver{phone: phone}
	phone.AddObserver(observer)
	phone.AddPhoneNumber("42")

	done := make(chan DialResult, 1)
	go func() { done <- phone.DialPhoneNumber("42") }()

	select {
	case result := <-done:
		assert.Equal(t, StatusDialed, result.Status)
	case <-time.After(5 * time.Second):
		t.Fatal("dial deadlocked on observer callback")
	}
	assert.Equal(t, []PhoneNumber{"42"}, observer.seen)
	assert.Empty(t, phone.PhoneNumbers())
}

func TestDialRecord_Format(t *testing.T) {
	record := NewDialRecord("123", time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC))
	assert.Equal(t, "05.03.2024 14:07:09  123", record.Format())
}

func TestTelephone_DialAnnouncer(t *testing.T) {
	var log []string
	phone := NewTelephone(WithDialAnnouncer(func(number PhoneNumber) {
		log = append(log, "dialing:"+string(number))
	}))
	phone.AddObserver(&recordingObserver{name: "a", log: &log})
	phone.AddPhoneNumber("1")

	phone.DialPhoneNumber("2")
	assert.Empty(t, log)

	phone.DialPhoneNumber("1")
	assert.Equal(t, []string{"dialing:1", "a:1"}, log)
}
