package utils

import "time"

// ChatMemoryPrefix is the prefix used for Redis session transcript keys.
const ChatMemoryPrefix = "chat:history:"

// BookingStatePrefix is the prefix used for Redis booking slot-filling state keys.
const BookingStatePrefix = "chat:booking:"

// ChatMemoryTTL is the sliding expiry applied to session transcripts and
// booking state on every write.
const ChatMemoryTTL = 24 * time.Hour

// HistoryCap bounds a session transcript; oldest turns are evicted first.
const HistoryCap = 10

// GenerateTimeout bounds a single generation call to the language model.
const GenerateTimeout = 30 * time.Second

// ExtractTimeout bounds a single structured-extraction call.
const ExtractTimeout = 15 * time.Second

// RetrieveTimeout bounds a single retrieval call to the ingestion collaborator.
const RetrieveTimeout = 8 * time.Second
