package keyword

// Collection operations are pure: each returns a fresh slice and leaves its
// input untouched, so callers can treat the working collection as
// copy-on-write at collection granularity.

// UpdateRole sets the role of the record with the given id. An absent id is
// a no-op, not an error.
func UpdateRole(records []Record, id int, role Role) []Record {
	out := clone(records)
	for i := range out {
		if out[i].ID == id {
			out[i].Role = role
			break
		}
	}
	return out
}

// SetParent attaches a record to a parent section by id. A negative parentID
// clears the attachment. An absent id is a no-op.
func SetParent(records []Record, id, parentID int) []Record {
	out := clone(records)
	for i := range out {
		if out[i].ID != id {
			continue
		}
		if parentID < 0 {
			out[i].ParentID = nil
		} else {
			p := parentID
			out[i].ParentID = &p
		}
		break
	}
	return out
}

// Remove deletes one record and re-packs Order so survivors hold a
// contiguous 0-based sequence in their existing relative order.
func Remove(records []Record, id int) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.ID == id {
			continue
		}
		out = append(out, r)
	}
	return resequence(out)
}

// Reorder rebuilds the collection following the explicit id sequence,
// assigning Order = position. Ids absent from the collection are skipped;
// records absent from newIDOrder are dropped silently.
func Reorder(records []Record, newIDOrder []int) []Record {
	byID := make(map[int]Record, len(records))
	for _, r := range records {
		byID[r.ID] = r
	}
	out := make([]Record, 0, len(newIDOrder))
	for _, id := range newIDOrder {
		r, ok := byID[id]
		if !ok {
			continue
		}
		r.Order = len(out)
		out = append(out, r)
	}
	return out
}

// FilterByVolumeFloor keeps records with SearchVolume >= min, re-sequenced.
func FilterByVolumeFloor(records []Record, min int) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.SearchVolume >= min {
			out = append(out, r)
		}
	}
	return resequence(out)
}

func resequence(records []Record) []Record {
	for i := range records {
		records[i].Order = i
	}
	return records
}

func clone(records []Record) []Record {
	return append([]Record(nil), records...)
}
